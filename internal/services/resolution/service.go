package resolution

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/duel-arena/internal/dice"
	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	"github.com/KirkDiggler/duel-arena/internal/domain/combat"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

type service struct {
	diceRoller dice.Roller
	logger     *slog.Logger
}

// ServiceConfig holds dependencies for the resolution service
type ServiceConfig struct {
	DiceRoller dice.Roller  // defaults to dice.NewRandomRoller()
	Logger     *slog.Logger // defaults to slog.Default()
}

// NewService creates a resolution service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		diceRoller: cfg.DiceRoller,
		logger:     cfg.Logger,
	}

	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Resolve implements Service.Resolve
func (s *service) Resolve(ab *ability.Ability, actor, opponent *combat.Combatant) (*Result, error) {
	if ab == nil {
		return nil, arenaerr.InvalidArgument("ability cannot be nil")
	}
	if actor == nil || opponent == nil {
		return nil, arenaerr.InvalidArgument("actor and opponent are required")
	}
	if err := opponent.Validate(); err != nil {
		return nil, arenaerr.Wrapf(err, "cannot resolve %s", ab.Name())
	}

	switch effect := ab.Effect().(type) {
	case ability.ConditionalDoubleDamage:
		return s.resolveConditionalDoubleDamage(ab, effect, actor, opponent)
	case ability.MalformedEffect:
		s.logger.Warn("ability has no usable parameters",
			"ability", ab.Name(),
			"actor", actor.Name,
			"reason", effect.Reason)
		return s.noEffect(ab, opponent, StatusMalformedDescription, effect.Reason), nil
	default:
		return s.noEffect(ab, opponent, StatusUnsupported,
			fmt.Sprintf("%s abilities are not resolved here", ab.Kind())), nil
	}
}

func (s *service) resolveConditionalDoubleDamage(ab *ability.Ability, params ability.ConditionalDoubleDamage, actor, opponent *combat.Combatant) (*Result, error) {
	roll, err := s.diceRoller.RollRange(params.MinDamage, params.MaxDamage)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to roll damage for %s", ab.Name())
	}

	result := &Result{
		Status:     StatusResolved,
		Ability:    ab.Name(),
		BaseDamage: roll.Total,
	}

	// Validate above guarantees MaxHealth > 0
	healthPercent, err := opponent.HealthPercent()
	if err != nil {
		return nil, err
	}

	finalDamage := result.BaseDamage
	if healthPercent < float64(params.Threshold) {
		finalDamage = result.BaseDamage * 2
		result.TriggeredBonus = true
		s.emit(result, fmt.Sprintf("%s is below %d%% health - %s deals double damage!",
			opponent.Name, params.Threshold, ab.Name()),
			"opponent", opponent.Name,
			"threshold", params.Threshold,
			"health_percent", healthPercent)
	}

	result.DamageDealt = finalDamage
	result.HealthLost = opponent.TakeDamage(finalDamage)
	s.emit(result, fmt.Sprintf("%s casts %s and deals %d damage!", actor.Name, ab.Name(), finalDamage),
		"actor", actor.Name,
		"damage", finalDamage,
		"base_damage", result.BaseDamage,
		"opponent_health", opponent.Health)

	result.Survived = opponent.IsAlive()
	return result, nil
}

func (s *service) noEffect(ab *ability.Ability, opponent *combat.Combatant, status Status, reason string) *Result {
	return &Result{
		Status:   status,
		Ability:  ab.Name(),
		Reason:   reason,
		Survived: opponent.IsAlive(),
	}
}

// emit records a combat log line on the result and mirrors it to the logger
func (s *service) emit(result *Result, message string, attrs ...any) {
	result.Messages = append(result.Messages, message)
	s.logger.Info(message, append([]any{"ability", result.Ability}, attrs...)...)
}
