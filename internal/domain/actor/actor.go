// Package actor models characters and NPCs: attribute dice, resource bars,
// damage affinities, NPC rank and owned class-feature items.
package actor

import (
	"encoding/json"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
)

// Type distinguishes player characters from NPCs
type Type string

const (
	TypeCharacter Type = "character"
	TypeNPC       Type = "npc"
)

// AttributeScore is an attribute die size, base and current (after statuses)
type AttributeScore struct {
	Base    int `json:"base" yaml:"base"`
	Current int `json:"current" yaml:"current"`
}

// Attributes holds the four attribute dice
type Attributes struct {
	Dexterity AttributeScore `json:"dex" yaml:"dex"`
	Insight   AttributeScore `json:"ins" yaml:"ins"`
	Might     AttributeScore `json:"mig" yaml:"mig"`
	Willpower AttributeScore `json:"wlp" yaml:"wlp"`
}

// Die returns the current die size for attr, or 0 for an unknown attribute
func (a Attributes) Die(attr check.Attribute) int {
	var score AttributeScore
	switch attr {
	case check.AttributeDexterity:
		score = a.Dexterity
	case check.AttributeInsight:
		score = a.Insight
	case check.AttributeMight:
		score = a.Might
	case check.AttributeWillpower:
		score = a.Willpower
	default:
		return 0
	}
	if score.Current == 0 {
		return score.Base
	}
	return score.Current
}

// AffinityScore is an actor's affinity to one damage type
type AffinityScore struct {
	Base    affinity.Value `json:"base" yaml:"base"`
	Current affinity.Value `json:"current" yaml:"current"`
}

// Derived holds values computed from equipment and attributes
type Derived struct {
	Def  int `json:"def" yaml:"def"`
	MDef int `json:"mdef" yaml:"mdef"`
	Init int `json:"init" yaml:"init"`
}

// Item is an owned item. Class features keep their data raw until decoded
// through the class feature registry.
type Item struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Type        string          `json:"type" yaml:"type"`
	FeatureType string          `json:"featureType,omitempty" yaml:"featureType,omitempty"`
	Data        json.RawMessage `json:"data,omitempty" yaml:"-"`
}

// ItemTypeClassFeature marks items whose data is a registered class feature
const ItemTypeClassFeature = "classFeature"

// Actor is a character or NPC
type Actor struct {
	ID         string                         `json:"id" yaml:"id"`
	Name       string                         `json:"name" yaml:"name"`
	Type       Type                           `json:"type" yaml:"type"`
	OwnerID    string                         `json:"ownerId,omitempty" yaml:"ownerId,omitempty"`
	Level      int                            `json:"level" yaml:"level"`
	Attributes Attributes                     `json:"attributes" yaml:"attributes"`
	Resources  Resources                      `json:"resources" yaml:"resources"`
	Affinities map[affinity.Key]AffinityScore `json:"affinities,omitempty" yaml:"affinities,omitempty"`
	Derived    Derived                        `json:"derived" yaml:"derived"`
	Rank       *Rank                          `json:"rank,omitempty" yaml:"rank,omitempty"`
	Items      []Item                         `json:"items,omitempty" yaml:"items,omitempty"`
}

// Affinity returns the current affinity to a damage type. Missing entries are None.
func (a *Actor) Affinity(t affinity.DamageType) affinity.Value {
	score, ok := a.Affinities[t.AffinityKey()]
	if !ok {
		return affinity.None
	}
	return score.Current
}

// Defense returns the defense score a check targets
func (a *Actor) Defense(d check.Defense) int {
	if d == check.DefenseMagic {
		return a.Derived.MDef
	}
	return a.Derived.Def
}

// IsNPC reports whether the actor is an NPC
func (a *Actor) IsNPC() bool {
	return a.Type == TypeNPC
}

// ClassFeatures returns the items carrying class feature data
func (a *Actor) ClassFeatures() []Item {
	var out []Item
	for _, item := range a.Items {
		if item.Type == ItemTypeClassFeature {
			out = append(out, item)
		}
	}
	return out
}

// Clone returns a deep copy
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	out := *a
	if a.Affinities != nil {
		out.Affinities = make(map[affinity.Key]AffinityScore, len(a.Affinities))
		for k, v := range a.Affinities {
			out.Affinities[k] = v
		}
	}
	if a.Rank != nil {
		rank := *a.Rank
		out.Rank = &rank
	}
	if a.Items != nil {
		out.Items = make([]Item, len(a.Items))
		for i, item := range a.Items {
			item.Data = append(json.RawMessage(nil), item.Data...)
			out.Items[i] = item
		}
	}
	return &out
}
