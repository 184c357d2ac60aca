// Package check models dice checks and the rules-specific side data a check
// carries (damage, hrZero, targeted defense, difficulty, targets).
//
// The side data is only ever read through Inspect and written through Configure.
package check

import (
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
)

// Type is the kind of check being rolled
type Type string

const (
	TypeAttribute  Type = "attribute"
	TypeAccuracy   Type = "accuracy"
	TypeMagic      Type = "magic"
	TypeOpen       Type = "open"
	TypeOpposed    Type = "opposed"
	TypeInitiative Type = "initiative"
)

// Attribute is one of the four attributes whose die a check rolls
type Attribute string

const (
	AttributeDexterity Attribute = "dex"
	AttributeInsight   Attribute = "ins"
	AttributeMight     Attribute = "mig"
	AttributeWillpower Attribute = "wlp"
)

// Attributes lists every attribute
var Attributes = []Attribute{AttributeDexterity, AttributeInsight, AttributeMight, AttributeWillpower}

// Defense is the defense score a check is rolled against
type Defense string

const (
	DefensePhysical Defense = "def"
	DefenseMagic    Defense = "mdef"
)

// BaseDamageLabel labels the modifier SetDamage seeds the damage with
const BaseDamageLabel = "FU.BaseDamage"

// BonusDamage is one labelled contribution to a damage total
type BonusDamage struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DamageData is the damage a check deals. Totals stay nil until the check is
// resolved.
type DamageData struct {
	Type          affinity.DamageType `json:"type"`
	Modifiers     []BonusDamage       `json:"modifiers"`
	ModifierTotal *int                `json:"modifierTotal,omitempty"`
	Total         *int                `json:"total,omitempty"`
}

// TargetData describes one targeted token, in targeting order
type TargetData struct {
	Name       string `json:"name"`
	UUID       string `json:"uuid"`
	Link       string `json:"link"`
	Difficulty int    `json:"difficulty"`
}

// AdditionalData is the side data a check carries. A nil field is absent.
type AdditionalData struct {
	Damage          *DamageData  `json:"damage,omitempty"`
	HrZero          *bool        `json:"hrZero,omitempty"`
	TargetedDefense *Defense     `json:"targetedDefense,omitempty"`
	Difficulty      *int         `json:"difficulty,omitempty"`
	Targets         []TargetData `json:"targets"`
}

// Roll is one attribute die rolled for the check
type Roll struct {
	Attribute Attribute `json:"attribute"`
	Dice      int       `json:"dice"`
	Result    int       `json:"result"`
}

// Modifier is a flat bonus or penalty to the check result
type Modifier struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Result is filled in when the check is rolled
type Result struct {
	Primary   Roll `json:"primary"`
	Secondary Roll `json:"secondary"`
	Modifier  int  `json:"modifier"`
	Total     int  `json:"total"`
	HR        int  `json:"hr"`
	Critical  bool `json:"critical"`
	Fumble    bool `json:"fumble"`
}

// Details names what the check was rolled for
type Details struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
}

// Check is a rolled or in-progress dice check
type Check struct {
	ID             string         `json:"id"`
	Type           Type           `json:"type"`
	ActorID        string         `json:"actorId"`
	Primary        Attribute      `json:"primary"`
	Secondary      Attribute      `json:"secondary"`
	Modifiers      []Modifier     `json:"modifiers,omitempty"`
	AdditionalData AdditionalData `json:"additionalData"`
	Details        Details        `json:"details"`
	Result         *Result        `json:"result,omitempty"`
}

// SourceCheck lets a check be inspected directly
func (c *Check) SourceCheck() *Check {
	return c
}

// ModifierTotal sums the flat check modifiers
func (c *Check) ModifierTotal() int {
	total := 0
	for _, m := range c.Modifiers {
		total += m.Value
	}
	return total
}

// Callback is one step of a check-setup pipeline
type Callback func(c *Check)

// Prepare runs the callbacks against the check in order
func Prepare(c *Check, callbacks ...Callback) {
	for _, cb := range callbacks {
		if cb != nil {
			cb(c)
		}
	}
}
