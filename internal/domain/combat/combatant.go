package combat

import (
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

// Combatant is one side of a fight. Health stays within [0, MaxHealth];
// lower it through TakeDamage.
type Combatant struct {
	ID        string
	Name      string
	Health    int
	MaxHealth int
}

// NewCombatant creates a combatant at full health
func NewCombatant(id, name string, maxHealth int) (*Combatant, error) {
	c := &Combatant{
		ID:        id,
		Name:      name,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the health invariants
func (c *Combatant) Validate() error {
	if c.MaxHealth <= 0 {
		return arenaerr.InvalidHealthStatef("%s has max health %d", c.Name, c.MaxHealth).
			WithMeta("combatant", c.Name)
	}
	if c.Health < 0 || c.Health > c.MaxHealth {
		return arenaerr.InvalidHealthStatef("%s has health %d outside 0-%d", c.Name, c.Health, c.MaxHealth).
			WithMeta("combatant", c.Name)
	}
	return nil
}

// HealthPercent returns 100 * Health / MaxHealth without truncation
func (c *Combatant) HealthPercent() (float64, error) {
	if c.MaxHealth <= 0 {
		return 0, arenaerr.InvalidHealthStatef("%s has max health %d", c.Name, c.MaxHealth).
			WithMeta("combatant", c.Name)
	}
	return 100 * float64(c.Health) / float64(c.MaxHealth), nil
}

// TakeDamage removes up to amount health and returns how much was actually lost.
// Negative amounts are ignored.
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}

	before := c.Health
	c.Health = clamp(c.Health-amount, 0, c.MaxHealth)
	return before - c.Health
}

// IsAlive reports whether the combatant has health left
func (c *Combatant) IsAlive() bool {
	return c.Health > 0
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
