package duel

import (
	"context"

	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

// Play runs the duel until one fighter is down. Each turn the active fighter
// casts its first damage ability that is off cooldown and affordable, and
// attacks otherwise. It fails with failed_precondition once maxTurns have
// passed without a winner.
func (d *Duel) Play(ctx context.Context, maxTurns int) (*Fighter, error) {
	if maxTurns < 1 {
		return nil, arenaerr.InvalidArgumentf("max turns must be positive, got %d", maxTurns)
	}

	for !d.IsOver() {
		if d.Turn() > maxTurns {
			return nil, arenaerr.FailedPreconditionf("duel %s undecided after %d turns", d.id, maxTurns).
				WithMeta("turns", maxTurns)
		}
		if err := d.takeTurn(ctx); err != nil {
			return nil, err
		}
		if !d.IsOver() {
			d.EndTurn()
		}
	}

	winner := d.Winner()
	d.logger.Info("duel finished", "turns", d.Turn(), "winner", winner.Combatant.Name)
	return winner, nil
}

func (d *Duel) takeTurn(ctx context.Context) error {
	if ab := d.Active().readyDamageAbility(); ab != nil {
		res, err := d.Cast(ctx, ab.Name())
		if err != nil {
			return err
		}
		if res.Resolution.HadEffect() {
			return nil
		}
	}

	_, err := d.Attack(ctx)
	return err
}

// readyDamageAbility returns the first well-formed damage ability the fighter
// can cast right now, or nil
func (f *Fighter) readyDamageAbility() *ability.Ability {
	for _, ab := range f.Abilities {
		if _, ok := ab.Effect().(ability.ConditionalDoubleDamage); !ok {
			continue
		}
		if f.CooldownRemaining(ab.Name()) == 0 && f.Mana >= ab.ManaCost() {
			return ab
		}
	}
	return nil
}
