package affinity

import "fmt"

// DamageType is the element a damage roll deals
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageAir      DamageType = "air"
	DamageBolt     DamageType = "bolt"
	DamageDark     DamageType = "dark"
	DamageEarth    DamageType = "earth"
	DamageFire     DamageType = "fire"
	DamageIce      DamageType = "ice"
	DamageLight    DamageType = "light"
	DamagePoison   DamageType = "poison"
	DamageUntyped  DamageType = "untyped"
)

// DamageTypes lists every damage type
var DamageTypes = []DamageType{
	DamagePhysical, DamageAir, DamageBolt, DamageDark, DamageEarth,
	DamageFire, DamageIce, DamageLight, DamagePoison, DamageUntyped,
}

// Key indexes an actor's affinity table
type Key string

const (
	KeyPhysical Key = "phys"
	KeyAir      Key = "air"
	KeyBolt     Key = "bolt"
	KeyDark     Key = "dark"
	KeyEarth    Key = "earth"
	KeyFire     Key = "fire"
	KeyIce      Key = "ice"
	KeyLight    Key = "light"
	KeyPoison   Key = "poison"
)

// Keys lists every affinity key an actor carries
var Keys = []Key{KeyPhysical, KeyAir, KeyBolt, KeyDark, KeyEarth, KeyFire, KeyIce, KeyLight, KeyPoison}

// AffinityKey returns the affinity table key for the damage type.
// Physical damage is stored under "phys"; every other type uses its own name.
func (t DamageType) AffinityKey() Key {
	if t == DamagePhysical {
		return KeyPhysical
	}
	return Key(t)
}

// LabelKey is the localization key naming the damage type
func (t DamageType) LabelKey() string {
	switch t {
	case DamagePhysical:
		return "FU.DamagePhysical"
	case DamageAir:
		return "FU.DamageAir"
	case DamageBolt:
		return "FU.DamageBolt"
	case DamageDark:
		return "FU.DamageDark"
	case DamageEarth:
		return "FU.DamageEarth"
	case DamageFire:
		return "FU.DamageFire"
	case DamageIce:
		return "FU.DamageIce"
	case DamageLight:
		return "FU.DamageLight"
	case DamagePoison:
		return "FU.DamagePoison"
	}
	return "FU.DamageUntyped"
}

// ParseDamageType validates a damage type name
func ParseDamageType(s string) (DamageType, error) {
	for _, t := range DamageTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown damage type %q", s)
}
