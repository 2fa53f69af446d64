package simulation

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func judgment(t *testing.T) *ability.Ability {
	t.Helper()
	ab, err := ability.NewConditionalDoubleDamage("Judgment of Fate",
		ability.ConditionalDoubleDamage{MinDamage: 60, MaxDamage: 90, Threshold: 40}, 8, 50)
	require.NoError(t, err)
	return ab
}

func TestRun_BelowThreshold(t *testing.T) {
	report, err := Run(context.Background(), &Config{
		Ability:           judgment(t),
		Trials:            3000,
		Workers:           4,
		Seed:              11,
		OpponentHealth:    100,
		OpponentMaxHealth: 500,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, report.Trials)
	assert.Equal(t, 3000, report.Resolved)
	assert.Equal(t, 3000, report.Bonuses)
	assert.Equal(t, 3000, report.Defeats)
	assert.InDelta(t, 1.0, report.BonusRate(), 1e-9)
	assert.Equal(t, 120, report.MinDamage)
	assert.Equal(t, 180, report.MaxDamage)

	total := 0
	for damage, count := range report.Damage {
		assert.Zero(t, damage%2)
		total += count
	}
	assert.Equal(t, 3000, total)
	assert.Len(t, report.Damage, 31)
}

func TestRun_AboveThreshold(t *testing.T) {
	report, err := Run(context.Background(), &Config{
		Ability:           judgment(t),
		Trials:            1000,
		Workers:           3,
		Seed:              5,
		OpponentHealth:    250,
		OpponentMaxHealth: 500,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.Zero(t, report.Bonuses)
	assert.Zero(t, report.Defeats)
	assert.Equal(t, 60, report.MinDamage)
	assert.Equal(t, 90, report.MaxDamage)
}

func TestRun_SameSeedSameReport(t *testing.T) {
	cfg := &Config{
		Ability:           judgment(t),
		Trials:            500,
		Workers:           2,
		Seed:              42,
		OpponentHealth:    300,
		OpponentMaxHealth: 1000,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	first, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_MalformedAbility(t *testing.T) {
	ab, err := ability.Define(ability.Definition{
		Name:        "Judgment of Fate",
		Description: "Deal 60-90 damage",
		Kind:        ability.KindConditionalDoubleDamage,
	})
	require.NoError(t, err)

	report, err := Run(context.Background(), &Config{
		Ability:           ab,
		Trials:            10,
		Workers:           20,
		OpponentHealth:    100,
		OpponentMaxHealth: 500,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, report.NoEffect)
	assert.Zero(t, report.Resolved)
	assert.Zero(t, report.BonusRate())
	assert.Empty(t, report.Damage)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), nil)
	assert.True(t, arenaerr.IsInvalidArgument(err))

	_, err = Run(context.Background(), &Config{Ability: judgment(t), Trials: 0, OpponentHealth: 1, OpponentMaxHealth: 1})
	assert.True(t, arenaerr.IsInvalidArgument(err))

	_, err = Run(context.Background(), &Config{Ability: judgment(t), Trials: 5, OpponentHealth: 0, OpponentMaxHealth: 0})
	assert.True(t, arenaerr.IsInvalidHealthState(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, &Config{Ability: judgment(t), Trials: 5, OpponentHealth: 1, OpponentMaxHealth: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
