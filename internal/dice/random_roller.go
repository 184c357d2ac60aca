package dice

import (
	"errors"
	"math/rand/v2"
)

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	result := &RollResult{
		Rolls: make([]int, count),
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}
	total := bonus
	for i := 0; i < count; i++ {
		roll := rand.IntN(sides) + 1
		result.Rolls[i] = roll
		total += roll
	}
	result.Total = total

	return result, nil
}
