package duel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/duel-arena/internal/dice"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/KirkDiggler/duel-arena/internal/services/resolution"
	"github.com/KirkDiggler/duel-arena/internal/uuid"
)

// Duel runs a one-on-one fight. Casts are serialized: each resolution
// finishes before the next action is accepted.
type Duel struct {
	mu        sync.Mutex
	id        string
	resolver  resolution.Service
	roller    dice.Roller
	manaRegen int
	logger    *slog.Logger

	fighters [2]*Fighter
	active   int
	turn     int
	log      []string
}

// DefaultManaRegen is the mana a fighter recovers at the start of each of its turns
const DefaultManaRegen = 5

// Config holds the participants and dependencies for a duel
type Config struct {
	Challenger    *Fighter // acts first
	Opponent      *Fighter
	Resolver      resolution.Service
	DiceRoller    dice.Roller    // basic attacks; defaults to dice.NewRandomRoller()
	ManaRegen     int            // per turn; 0 means DefaultManaRegen, negative disables
	UUIDGenerator uuid.Generator // defaults to google uuid
	Logger        *slog.Logger   // defaults to slog.Default()
}

// CastResult describes one ability use inside a duel
type CastResult struct {
	Caster     string
	Target     string
	ManaSpent  int
	Resolution *resolution.Result
}

// AttackResult describes one basic attack inside a duel
type AttackResult struct {
	Attacker   string
	Target     string
	Damage     int
	HealthLost int
	Survived   bool
}

// New creates a duel on turn 1 with the challenger active
func New(cfg *Config) (*Duel, error) {
	if cfg == nil || cfg.Challenger == nil || cfg.Opponent == nil {
		return nil, arenaerr.InvalidArgument("challenger and opponent are required")
	}
	if cfg.Resolver == nil {
		return nil, arenaerr.InvalidArgument("resolver is required")
	}
	for _, f := range []*Fighter{cfg.Challenger, cfg.Opponent} {
		if f.Combatant == nil {
			return nil, arenaerr.InvalidArgument("fighter has no combatant")
		}
		if err := f.Combatant.Validate(); err != nil {
			return nil, err
		}
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	manaRegen := cfg.ManaRegen
	switch {
	case manaRegen == 0:
		manaRegen = DefaultManaRegen
	case manaRegen < 0:
		manaRegen = 0
	}

	d := &Duel{
		id:        gen.New(),
		resolver:  cfg.Resolver,
		roller:    roller,
		manaRegen: manaRegen,
		fighters:  [2]*Fighter{cfg.Challenger, cfg.Opponent},
		turn:      1,
	}
	d.logger = logger.With("duel", d.id)

	return d, nil
}

// ID returns the duel identifier
func (d *Duel) ID() string {
	return d.id
}

// Cast uses an ability of the active fighter against the other fighter.
// Mana and cooldown are only spent when the ability actually takes effect.
func (d *Duel) Cast(ctx context.Context, abilityName string) (*CastResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isOver() {
		return nil, arenaerr.FailedPreconditionf("duel %s is over", d.id)
	}

	caster := d.fighters[d.active]
	target := d.fighters[1-d.active]

	ab, err := caster.Ability(abilityName)
	if err != nil {
		return nil, err
	}

	if remaining := caster.CooldownRemaining(ab.Name()); remaining > 0 {
		return nil, arenaerr.FailedPreconditionf("%s is on cooldown for %d more turns", ab.Name(), remaining).
			WithMeta("cooldown", remaining)
	}
	if caster.Mana < ab.ManaCost() {
		return nil, arenaerr.FailedPreconditionf("%s needs %d mana, %s has %d",
			ab.Name(), ab.ManaCost(), caster.Combatant.Name, caster.Mana).
			WithMeta("mana", caster.Mana)
	}

	res, err := d.resolver.Resolve(ab, caster.Combatant, target.Combatant)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to resolve %s", ab.Name())
	}

	result := &CastResult{
		Caster:     caster.Combatant.Name,
		Target:     target.Combatant.Name,
		Resolution: res,
	}

	if !res.HadEffect() {
		d.logger.Info("ability had no effect",
			"turn", d.turn,
			"caster", caster.Combatant.Name,
			"ability", ab.Name(),
			"status", res.Status,
			"reason", res.Reason)
		return result, nil
	}

	caster.Mana -= ab.ManaCost()
	caster.startCooldown(ab)
	result.ManaSpent = ab.ManaCost()
	d.log = append(d.log, res.Messages...)

	if !res.Survived {
		d.recordDefeat(caster, target)
	}

	return result, nil
}

// Attack makes the active fighter hit the other fighter for a random amount
// in its attack range. Attacks cost nothing and are always available.
func (d *Duel) Attack(ctx context.Context) (*AttackResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isOver() {
		return nil, arenaerr.FailedPreconditionf("duel %s is over", d.id)
	}

	attacker := d.fighters[d.active]
	target := d.fighters[1-d.active]

	roll, err := d.roller.RollRange(attacker.AttackMin, attacker.AttackMax)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to roll attack for %s", attacker.Combatant.Name)
	}

	result := &AttackResult{
		Attacker:   attacker.Combatant.Name,
		Target:     target.Combatant.Name,
		Damage:     roll.Total,
		HealthLost: target.Combatant.TakeDamage(roll.Total),
		Survived:   target.Combatant.IsAlive(),
	}

	msg := fmt.Sprintf("%s attacks %s for %d damage!", result.Attacker, result.Target, result.Damage)
	d.log = append(d.log, msg)
	d.logger.Info(msg, "turn", d.turn, "roll", roll.String(), "target_health", target.Combatant.Health)

	if !result.Survived {
		d.recordDefeat(attacker, target)
	}

	return result, nil
}

// EndTurn hands the turn to the other fighter, counts down their cooldowns
// and regenerates their mana
func (d *Duel) EndTurn() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.active = 1 - d.active
	d.turn++

	next := d.fighters[d.active]
	next.tickCooldowns()
	if gained := next.regenMana(d.manaRegen); gained > 0 {
		msg := fmt.Sprintf("%s regenerates %d mana.", next.Combatant.Name, gained)
		d.log = append(d.log, msg)
		d.logger.Debug(msg, "turn", d.turn, "mana", next.Mana)
	}
}

func (d *Duel) recordDefeat(winner, loser *Fighter) {
	msg := loser.Combatant.Name + " has been defeated!"
	d.log = append(d.log, msg)
	d.logger.Info(msg, "turn", d.turn, "winner", winner.Combatant.Name)
}

// Active returns the fighter whose turn it is
func (d *Duel) Active() *Fighter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fighters[d.active]
}

// Turn returns the current turn number, starting at 1
func (d *Duel) Turn() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.turn
}

// Log returns a copy of the combat log
func (d *Duel) Log() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.log))
	copy(out, d.log)
	return out
}

// Winner returns the surviving fighter once the duel is over, nil before that
func (d *Duel) Winner() *Fighter {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isOver() {
		return nil
	}
	for _, f := range d.fighters {
		if f.Combatant.IsAlive() {
			return f
		}
	}
	return nil
}

// IsOver reports whether either fighter is down
func (d *Duel) IsOver() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isOver()
}

func (d *Duel) isOver() bool {
	return !d.fighters[0].Combatant.IsAlive() || !d.fighters[1].Combatant.IsAlive()
}
