package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/projectfu-discord/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: rolls,
	}
}

// SetRolls replaces the queued results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Roll implements dice.Roller
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := &dice.RollResult{
		Rolls: make([]int, count),
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}
	total := bonus
	for i := 0; i < count; i++ {
		if m.rollIndex >= len(m.rolls) {
			return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
		}
		roll := m.rolls[m.rollIndex]
		m.rollIndex++
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		result.Rolls[i] = roll
		total += roll
	}
	result.Total = total

	return result, nil
}
