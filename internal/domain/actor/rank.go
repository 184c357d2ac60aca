package actor

import (
	"fmt"
	"strconv"
	"strings"
)

// RankValue is an NPC's rank
type RankValue string

const (
	RankSoldier   RankValue = "soldier"
	RankElite     RankValue = "elite"
	RankChampion  RankValue = "champion"
	RankCompanion RankValue = "companion"
)

// Rank is an NPC's rank. Champions replace between one and five soldiers.
type Rank struct {
	Value   RankValue `json:"value" yaml:"value"`
	Replace int       `json:"replace,omitempty" yaml:"replace,omitempty"`
}

// ReplacedSoldiers is how many soldiers the NPC counts as, which is also how
// many turns it takes per round
func (r Rank) ReplacedSoldiers() int {
	switch r.Value {
	case RankElite:
		return 2
	case RankChampion:
		switch {
		case r.Replace < 1:
			return 1
		case r.Replace > 5:
			return 5
		}
		return r.Replace
	default:
		return 1
	}
}

func (r Rank) String() string {
	if r.Value == RankChampion {
		return fmt.Sprintf("%s%d", r.Value, r.ReplacedSoldiers())
	}
	return string(r.Value)
}

// ParseRank parses "soldier", "elite", "companion" or "championN"
func ParseRank(s string) (Rank, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch RankValue(s) {
	case RankSoldier, RankElite, RankCompanion:
		return Rank{Value: RankValue(s)}, nil
	}
	if rest, ok := strings.CutPrefix(s, string(RankChampion)); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > 5 {
			return Rank{}, fmt.Errorf("invalid champion rank %q", s)
		}
		return Rank{Value: RankChampion, Replace: n}, nil
	}
	return Rank{}, fmt.Errorf("unknown rank %q", s)
}
