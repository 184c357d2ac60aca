package classfeature

import (
	"fmt"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
)

// Arcanum is an arcanist's bound arcanum
type Arcanum struct {
	Domains     string `json:"domains"`
	Merge       string `json:"merge"`
	Dismiss     string `json:"dismiss"`
	Description string `json:"description,omitempty"`
}

func (a *Arcanum) Validate() error {
	if a.Merge == "" && a.Dismiss == "" {
		return fmt.Errorf("arcanum needs a merge or dismiss effect")
	}
	return nil
}

// TinkererRank is the tier of a tinkerer feature
type TinkererRank string

const (
	RankBasic    TinkererRank = "basic"
	RankAdvanced TinkererRank = "advanced"
	RankSuperior TinkererRank = "superior"
)

func validRank(r TinkererRank) error {
	switch r {
	case RankBasic, RankAdvanced, RankSuperior:
		return nil
	}
	return fmt.Errorf("unknown rank %q", r)
}

// AlchemyEntry is one row of an alchemy table: a d20 range and its result
type AlchemyEntry struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	Description string `json:"description"`
}

// Alchemy is a tinkerer's gadget mixing table
type Alchemy struct {
	Rank        TinkererRank   `json:"rank"`
	Targets     []AlchemyEntry `json:"targets"`
	Effects     []AlchemyEntry `json:"effects"`
	Description string         `json:"description,omitempty"`
}

func (a *Alchemy) Validate() error {
	if err := validRank(a.Rank); err != nil {
		return err
	}
	for _, table := range [][]AlchemyEntry{a.Targets, a.Effects} {
		for _, e := range table {
			if e.From < 1 || e.To > 20 || e.From > e.To {
				return fmt.Errorf("alchemy range %d-%d outside 1-20", e.From, e.To)
			}
		}
	}
	return nil
}

// Lookup returns the entry covering a d20 roll
func (a *Alchemy) Lookup(table []AlchemyEntry, roll int) (AlchemyEntry, bool) {
	for _, e := range table {
		if roll >= e.From && roll <= e.To {
			return e, true
		}
	}
	return AlchemyEntry{}, false
}

// Magitech is a tinkerer's magitech gadget
type Magitech struct {
	Rank        TinkererRank `json:"rank"`
	Description string       `json:"description,omitempty"`
}

func (m *Magitech) Validate() error {
	return validRank(m.Rank)
}

// Infusion changes an attack's damage type
type Infusion struct {
	Name        string              `json:"name"`
	DamageType  affinity.DamageType `json:"damageType"`
	Bonus       int                 `json:"bonus,omitempty"`
	Description string              `json:"description,omitempty"`
}

// Infusions is a tinkerer's set of weapon infusions
type Infusions struct {
	Rank      TinkererRank `json:"rank"`
	Infusions []Infusion   `json:"infusions"`
}

func (i *Infusions) Validate() error {
	if err := validRank(i.Rank); err != nil {
		return err
	}
	for _, inf := range i.Infusions {
		if _, err := affinity.ParseDamageType(string(inf.DamageType)); err != nil {
			return fmt.Errorf("infusion %q: %w", inf.Name, err)
		}
	}
	return nil
}
