package combat

import (
	"math"
	"testing"

	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCombatant(t *testing.T) {
	c, err := NewCombatant("c-1", "Knight", 1600)
	require.NoError(t, err)
	assert.Equal(t, 1600, c.Health)
	assert.True(t, c.IsAlive())

	_, err = NewCombatant("c-2", "Ghost", 0)
	assert.True(t, arenaerr.IsInvalidHealthState(err))
}

func TestCombatant_TakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		damage     int
		wantLost   int
		wantHealth int
	}{
		{name: "normal hit", health: 500, damage: 120, wantLost: 120, wantHealth: 380},
		{name: "exact kill", health: 100, damage: 100, wantLost: 100, wantHealth: 0},
		{name: "overkill clamps at zero", health: 100, damage: 180, wantLost: 100, wantHealth: 0},
		{name: "huge damage", health: 100, damage: math.MaxInt, wantLost: 100, wantHealth: 0},
		{name: "zero damage", health: 100, damage: 0, wantLost: 0, wantHealth: 100},
		{name: "negative damage ignored", health: 100, damage: -50, wantLost: 0, wantHealth: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Combatant{Name: "Target", Health: tt.health, MaxHealth: 500}

			lost := c.TakeDamage(tt.damage)

			assert.Equal(t, tt.wantLost, lost)
			assert.Equal(t, tt.wantHealth, c.Health)
			assert.GreaterOrEqual(t, c.Health, 0)
		})
	}
}

func TestCombatant_HealthPercent(t *testing.T) {
	c := &Combatant{Name: "Target", Health: 100, MaxHealth: 500}
	pct, err := c.HealthPercent()
	require.NoError(t, err)
	assert.InDelta(t, 20.0, pct, 1e-9)

	// No truncation: 1/3 of health is 33.33...
	c = &Combatant{Name: "Target", Health: 1, MaxHealth: 3}
	pct, err = c.HealthPercent()
	require.NoError(t, err)
	assert.InDelta(t, 33.3333, pct, 1e-3)

	c = &Combatant{Name: "Broken", Health: 0, MaxHealth: 0}
	_, err = c.HealthPercent()
	assert.True(t, arenaerr.IsInvalidHealthState(err))
}

func TestCombatant_Validate(t *testing.T) {
	assert.NoError(t, (&Combatant{Name: "ok", Health: 0, MaxHealth: 10}).Validate())
	assert.True(t, arenaerr.IsInvalidHealthState((&Combatant{Name: "neg", Health: -1, MaxHealth: 10}).Validate()))
	assert.True(t, arenaerr.IsInvalidHealthState((&Combatant{Name: "over", Health: 11, MaxHealth: 10}).Validate()))
	assert.True(t, arenaerr.IsInvalidHealthState((&Combatant{Name: "zero", Health: 0, MaxHealth: -4}).Validate()))
}
