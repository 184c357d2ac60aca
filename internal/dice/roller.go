package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import (
	"fmt"
	"strings"
)

// Roller provides an interface for rolling dice
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total int   // Sum of all dice plus bonus
	Rolls []int // Individual die results
	Bonus int
	Count int
	Sides int
}

// Highest returns the highest individual die
func (r *RollResult) Highest() int {
	highest := 0
	for _, roll := range r.Rolls {
		if roll > highest {
			highest = roll
		}
	}
	return highest
}

func (r *RollResult) String() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = fmt.Sprintf("%d", roll)
	}
	out := fmt.Sprintf("%dd%d [%s]", r.Count, r.Sides, strings.Join(parts, ", "))
	if r.Bonus != 0 {
		out += fmt.Sprintf(" %+d", r.Bonus)
	}
	return fmt.Sprintf("%s = %d", out, r.Total)
}
