package combat

import (
	"fmt"
	"time"
)

// EncounterStatus represents the current state of an encounter
type EncounterStatus string

const (
	EncounterStatusSetup     EncounterStatus = "setup"
	EncounterStatusActive    EncounterStatus = "active"
	EncounterStatusCompleted EncounterStatus = "completed"
)

// TurnCounter returns the turns per round a combatant is entitled to.
// It is consulted on every call so rank changes take effect immediately.
type TurnCounter func(c *Combatant) int

// Encounter is a combat in a channel. Factions alternate turns; a round ends
// when nobody has turns left.
type Encounter struct {
	ID             string                `json:"id"`
	ChannelID      string                `json:"channel_id"`
	Name           string                `json:"name"`
	Status         EncounterStatus       `json:"status"`
	Round          int                   `json:"round"`
	FirstFaction   Faction               `json:"first_faction,omitempty"`
	CurrentFaction Faction               `json:"current_faction,omitempty"`
	Combatants     map[string]*Combatant `json:"combatants"`
	Order          []string              `json:"order"`
	TurnsTaken     map[string]int        `json:"turns_taken"`
	CreatedAt      time.Time             `json:"created_at"`
	StartedAt      *time.Time            `json:"started_at,omitempty"`
	CreatedBy      string                `json:"created_by"`
	CombatLog      []string              `json:"combat_log"`
}

// NewEncounter creates a new encounter
func NewEncounter(id, channelID, name, createdBy string) *Encounter {
	return &Encounter{
		ID:         id,
		ChannelID:  channelID,
		Name:       name,
		Status:     EncounterStatusSetup,
		Combatants: make(map[string]*Combatant),
		Order:      []string{},
		TurnsTaken: make(map[string]int),
		CreatedAt:  time.Now(),
		CreatedBy:  createdBy,
		CombatLog:  []string{},
	}
}

// AddCombatant adds a combatant, keeping join order
func (e *Encounter) AddCombatant(c *Combatant) {
	if _, exists := e.Combatants[c.ID]; !exists {
		e.Order = append(e.Order, c.ID)
	}
	e.Combatants[c.ID] = c
}

// RemoveCombatant removes a combatant from the encounter
func (e *Encounter) RemoveCombatant(id string) {
	delete(e.Combatants, id)
	delete(e.TurnsTaken, id)
	order := make([]string, 0, len(e.Order))
	for _, cid := range e.Order {
		if cid != id {
			order = append(order, cid)
		}
	}
	e.Order = order
}

// Start begins round one with the given faction acting first
func (e *Encounter) Start(first Faction) error {
	if e.Status != EncounterStatusSetup {
		return fmt.Errorf("encounter is %s", e.Status)
	}
	if len(e.Combatants) == 0 {
		return fmt.Errorf("encounter has no combatants")
	}

	now := time.Now()
	e.Status = EncounterStatusActive
	e.StartedAt = &now
	e.Round = 1
	e.FirstFaction = first
	e.CurrentFaction = first
	e.TurnsTaken = make(map[string]int)
	e.AddLog(fmt.Sprintf("Round 1 begins, %s faction acts first", first))
	return nil
}

// RemainingTurns returns how many turns a combatant has left this round
func (e *Encounter) RemainingTurns(id string, turns TurnCounter) int {
	c, ok := e.Combatants[id]
	if !ok {
		return 0
	}
	left := turns(c) - e.TurnsTaken[id]
	if left < 0 {
		return 0
	}
	return left
}

// FactionHasTurns reports whether anyone in the faction can still act this round
func (e *Encounter) FactionHasTurns(f Faction, turns TurnCounter) bool {
	for _, id := range e.Order {
		c := e.Combatants[id]
		if c.Faction() == f && e.RemainingTurns(id, turns) > 0 {
			return true
		}
	}
	return false
}

// TakeTurn spends one of the combatant's turns and passes play on
func (e *Encounter) TakeTurn(id string, turns TurnCounter) error {
	if e.Status != EncounterStatusActive {
		return fmt.Errorf("encounter is not active")
	}
	c, ok := e.Combatants[id]
	if !ok {
		return fmt.Errorf("combatant %s not in encounter", id)
	}
	if c.Faction() != e.CurrentFaction {
		return fmt.Errorf("it is the %s faction's turn", e.CurrentFaction)
	}
	if e.RemainingTurns(id, turns) == 0 {
		return fmt.Errorf("%s has no turns left this round", c.Name)
	}

	e.TurnsTaken[id]++
	e.AddLog(fmt.Sprintf("Round %d: %s takes a turn", e.Round, c.Name))
	e.advance(turns)
	return nil
}

func (e *Encounter) advance(turns TurnCounter) {
	switch {
	case e.FactionHasTurns(e.CurrentFaction.Other(), turns):
		e.CurrentFaction = e.CurrentFaction.Other()
	case e.FactionHasTurns(e.CurrentFaction, turns):
	default:
		e.Round++
		e.TurnsTaken = make(map[string]int)
		e.CurrentFaction = e.FirstFaction
		if !e.FactionHasTurns(e.CurrentFaction, turns) {
			e.CurrentFaction = e.CurrentFaction.Other()
		}
		e.AddLog(fmt.Sprintf("Round %d begins", e.Round))
	}
}

// End completes the encounter
func (e *Encounter) End() {
	e.Status = EncounterStatusCompleted
	e.AddLog("Combat ended")
}

// AddLog adds an entry to the combat log, keeping the last 20
func (e *Encounter) AddLog(entry string) {
	e.CombatLog = append(e.CombatLog, entry)
	if len(e.CombatLog) > 20 {
		e.CombatLog = e.CombatLog[len(e.CombatLog)-20:]
	}
}

// Clone returns a deep copy
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	out := *e
	out.Combatants = make(map[string]*Combatant, len(e.Combatants))
	for id, c := range e.Combatants {
		cc := *c
		if c.Token != nil {
			token := *c.Token
			cc.Token = &token
		}
		out.Combatants[id] = &cc
	}
	out.Order = append([]string{}, e.Order...)
	out.TurnsTaken = make(map[string]int, len(e.TurnsTaken))
	for id, n := range e.TurnsTaken {
		out.TurnsTaken[id] = n
	}
	out.CombatLog = append([]string{}, e.CombatLog...)
	if e.StartedAt != nil {
		started := *e.StartedAt
		out.StartedAt = &started
	}
	return &out
}

// IsOpen reports whether the encounter is still being set up or fought
func (e *Encounter) IsOpen() bool {
	return e.Status == EncounterStatusSetup || e.Status == EncounterStatusActive
}
