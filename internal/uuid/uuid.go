// uuid generates combatant identifiers behind an interface so tests can pin them
package uuid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns the given IDs in order and random UUIDs once they run out
type SequenceGenerator struct {
	mu   sync.Mutex
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator that hands out ids first
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next queued ID
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id
	}
	return uuid.NewString()
}
