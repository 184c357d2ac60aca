// Package uuid hands out identifiers for chat messages, encounters and combatants
// behind an interface so tests can pin them.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Sequence returns deterministic ids prefix-1, prefix-2, ... for fixtures and tools
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence starts a sequence at prefix-1
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// New returns the next id in the sequence
func (s *Sequence) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.prefix + "-" + strconv.Itoa(s.next)
}
