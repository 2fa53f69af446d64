package resolution

import (
	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	"github.com/KirkDiggler/duel-arena/internal/domain/combat"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockresolution -source=types.go

// Service resolves one use of an ability against an opponent
type Service interface {
	// Resolve computes and applies the ability's effect, mutating opponent health
	Resolve(ab *ability.Ability, actor, opponent *combat.Combatant) (*Result, error)
}

// Status says whether a resolution did anything
type Status string

const (
	// StatusResolved means the effect ran; DamageDealt may still be zero
	StatusResolved Status = "resolved"

	// StatusMalformedDescription means the ability's parameters could not be read from its
	// description, so nothing happened. Callers may fall back to a default behavior.
	StatusMalformedDescription Status = "malformed_description"

	// StatusUnsupported means the ability kind has no resolver behavior
	StatusUnsupported Status = "unsupported"
)

// Result is the outcome of a single resolution
type Result struct {
	Status  Status
	Ability string
	Reason  string // set when Status is not StatusResolved

	BaseDamage     int  // sampled damage before the bonus
	DamageDealt    int  // final damage after the bonus
	HealthLost     int  // health actually removed from the opponent after clamping
	TriggeredBonus bool // opponent was below the threshold
	Survived       bool // opponent health > 0 afterwards

	// Messages are the combat log lines, in emission order
	Messages []string
}

// HadEffect reports whether the ability actually ran
func (r *Result) HadEffect() bool {
	return r != nil && r.Status == StatusResolved
}
