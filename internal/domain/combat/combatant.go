package combat

import "github.com/KirkDiggler/projectfu-discord/internal/domain/actor"

// Faction is the side a combatant fights on
type Faction string

const (
	FactionFriendly Faction = "friendly"
	FactionHostile  Faction = "hostile"
)

// Other returns the opposing faction
func (f Faction) Other() Faction {
	if f == FactionFriendly {
		return FactionHostile
	}
	return FactionFriendly
}

// Disposition is how a token regards the players
type Disposition int

const (
	DispositionSecret   Disposition = -2
	DispositionHostile  Disposition = -1
	DispositionNeutral  Disposition = 0
	DispositionFriendly Disposition = 1
)

// Token is the scene presence a combatant is created from
type Token struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ActorID     string      `json:"actorId,omitempty"`
	Disposition Disposition `json:"disposition"`
}

// Combatant is a token taking part in an encounter
type Combatant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ActorID string `json:"actorId,omitempty"`
	Token   *Token `json:"token,omitempty"`
	Hidden  bool   `json:"hidden,omitempty"`
}

// Faction is friendly only for friendly tokens. Neutral, secret and missing
// tokens count as hostile.
func (c *Combatant) Faction() Faction {
	if c.Token != nil && c.Token.Disposition == DispositionFriendly {
		return FactionFriendly
	}
	return FactionHostile
}

// TotalTurns is how many turns the combatant takes per round given its
// current actor. Ranked NPCs take one per replaced soldier; anything else,
// including a missing actor, takes one.
func (c *Combatant) TotalTurns(a *actor.Actor) int {
	if a != nil && a.IsNPC() && a.Rank != nil {
		return a.Rank.ReplacedSoldiers()
	}
	return 1
}
