package simulation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/duel-arena/internal/dice"
	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	"github.com/KirkDiggler/duel-arena/internal/domain/combat"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/KirkDiggler/duel-arena/internal/services/resolution"
)

// Config describes a batch of independent resolutions of one ability
type Config struct {
	Ability           *ability.Ability
	Trials            int
	Workers           int
	Seed              int64 // 0 seeds from the clock; worker w uses Seed+w
	OpponentHealth    int
	OpponentMaxHealth int
	Logger            *slog.Logger // progress logging; per-trial combat lines are not logged
}

// Report aggregates the outcome of every trial
type Report struct {
	Trials    int
	Resolved  int
	NoEffect  int
	Bonuses   int
	Defeats   int
	MinDamage int
	MaxDamage int
	Damage    map[int]int // final damage -> count
}

// BonusRate is the fraction of resolved trials that triggered the bonus
func (r *Report) BonusRate() float64 {
	if r.Resolved == 0 {
		return 0
	}
	return float64(r.Bonuses) / float64(r.Resolved)
}

// Run resolves the ability Trials times, each against a fresh opponent, spread over Workers goroutines.
// Every trial is independent; no state is shared between them.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if cfg == nil || cfg.Ability == nil {
		return nil, arenaerr.InvalidArgument("ability is required")
	}
	if cfg.Trials < 1 {
		return nil, arenaerr.InvalidArgumentf("trials must be positive, got %d", cfg.Trials)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}
	probe := &combat.Combatant{Name: "Target", Health: cfg.OpponentHealth, MaxHealth: cfg.OpponentMaxHealth}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	partials := make([]*Report, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			svc := resolution.NewService(&resolution.ServiceConfig{
				DiceRoller: dice.NewSeededRoller(seed + int64(w)),
				Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			partial := newReport()
			actor := &combat.Combatant{Name: "Caster", Health: 1, MaxHealth: 1}
			for i := w; i < cfg.Trials; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}

				opponent := &combat.Combatant{Name: "Target", Health: cfg.OpponentHealth, MaxHealth: cfg.OpponentMaxHealth}
				res, err := svc.Resolve(cfg.Ability, actor, opponent)
				if err != nil {
					return arenaerr.Wrapf(err, "trial %d", i)
				}
				partial.add(res)
			}

			partials[w] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport()
	for _, partial := range partials {
		report.merge(partial)
	}

	logger.Info("simulation finished",
		"ability", cfg.Ability.Name(),
		"trials", report.Trials,
		"workers", workers,
		"resolved", report.Resolved,
		"bonus_rate", report.BonusRate())

	return report, nil
}

func newReport() *Report {
	return &Report{Damage: make(map[int]int)}
}

func (r *Report) add(res *resolution.Result) {
	r.Trials++
	if !res.HadEffect() {
		r.NoEffect++
		return
	}

	r.Resolved++
	if res.TriggeredBonus {
		r.Bonuses++
	}
	if !res.Survived {
		r.Defeats++
	}
	r.observe(res.DamageDealt, 1)
}

func (r *Report) observe(damage, count int) {
	first := len(r.Damage) == 0
	if first || damage < r.MinDamage {
		r.MinDamage = damage
	}
	if first || damage > r.MaxDamage {
		r.MaxDamage = damage
	}
	r.Damage[damage] += count
}

func (r *Report) merge(other *Report) {
	r.Trials += other.Trials
	r.Resolved += other.Resolved
	r.NoEffect += other.NoEffect
	r.Bonuses += other.Bonuses
	r.Defeats += other.Defeats
	for damage, count := range other.Damage {
		r.observe(damage, count)
	}
}
