package testutils

import (
	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
)

// CreateTestCharacter creates a level 5 character with d8 attributes and
// full resource bars
func CreateTestCharacter(id, name string) *actor.Actor {
	return &actor.Actor{
		ID:    id,
		Name:  name,
		Type:  actor.TypeCharacter,
		Level: 5,
		Attributes: actor.Attributes{
			Dexterity: actor.AttributeScore{Base: 8},
			Insight:   actor.AttributeScore{Base: 8},
			Might:     actor.AttributeScore{Base: 8},
			Willpower: actor.AttributeScore{Base: 8},
		},
		Resources: actor.Resources{
			HP: actor.Resource{Value: 50, Max: 50},
			MP: actor.Resource{Value: 40, Max: 40},
			IP: actor.Resource{Value: 6, Max: 6},
		},
		Derived: actor.Derived{Def: 8, MDef: 8, Init: 0},
	}
}

// CreateTestNPC creates an NPC of the given rank
func CreateTestNPC(id, name string, rank actor.Rank) *actor.Actor {
	a := CreateTestCharacter(id, name)
	a.Type = actor.TypeNPC
	a.Rank = &rank
	a.Derived = actor.Derived{Def: 10, MDef: 9}
	return a
}

// WithAffinity sets an actor's base and current affinity to a damage type
func WithAffinity(a *actor.Actor, t affinity.DamageType, v affinity.Value) *actor.Actor {
	if a.Affinities == nil {
		a.Affinities = make(map[affinity.Key]actor.AffinityScore)
	}
	a.Affinities[t.AffinityKey()] = actor.AffinityScore{Base: v, Current: v}
	return a
}

// CreateTestCombatant creates a combatant for an actor with a token of the
// given disposition
func CreateTestCombatant(id string, a *actor.Actor, disposition combat.Disposition) *combat.Combatant {
	c := &combat.Combatant{
		ID:   id,
		Name: id,
		Token: &combat.Token{
			ID:          "token-" + id,
			Name:        id,
			Disposition: disposition,
		},
	}
	if a != nil {
		c.Name = a.Name
		c.ActorID = a.ID
		c.Token.Name = a.Name
		c.Token.ActorID = a.ID
	}
	return c
}
