// Package affinity resolves how much damage an actor takes given its affinity
// to the damage type and the click modifiers held when damage was applied.
package affinity

import "fmt"

// Value is an actor's affinity towards one damage type
type Value int

const (
	Vulnerability Value = -1
	None          Value = 0
	Resistance    Value = 1
	Immunity      Value = 2
	Absorption    Value = 3
)

// Values lists every affinity in ascending order
var Values = []Value{Vulnerability, None, Resistance, Immunity, Absorption}

// Known reports whether v is one of the five affinities
func (v Value) Known() bool {
	switch v {
	case Vulnerability, None, Resistance, Immunity, Absorption:
		return true
	}
	return false
}

// Normalize maps unknown values to None
func (v Value) Normalize() Value {
	if !v.Known() {
		return None
	}
	return v
}

func (v Value) String() string {
	switch v {
	case Vulnerability:
		return "vulnerability"
	case None:
		return "none"
	case Resistance:
		return "resistance"
	case Immunity:
		return "immunity"
	case Absorption:
		return "absorption"
	}
	return fmt.Sprintf("affinity(%d)", int(v))
}

// LabelKey is the localization key naming the affinity
func (v Value) LabelKey() string {
	switch v.Normalize() {
	case Vulnerability:
		return "FU.AffinityVulnerability"
	case Resistance:
		return "FU.AffinityResistance"
	case Immunity:
		return "FU.AffinityImmune"
	case Absorption:
		return "FU.AffinityAbsorption"
	default:
		return "FU.AffinityNormal"
	}
}

// ParseValue parses an affinity by name ("resistance") or short code ("rs")
func ParseValue(s string) (Value, error) {
	switch s {
	case "vulnerability", "vu", "-1":
		return Vulnerability, nil
	case "none", "", "0":
		return None, nil
	case "resistance", "rs", "1":
		return Resistance, nil
	case "immunity", "im", "2":
		return Immunity, nil
	case "absorption", "ab", "3":
		return Absorption, nil
	}
	return None, fmt.Errorf("unknown affinity %q", s)
}
