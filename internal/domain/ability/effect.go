package ability

import (
	"fmt"
	"math"
)

// Kind tags how an ability is resolved. It is fixed when the ability is defined.
type Kind string

const (
	// KindConditionalDoubleDamage deals a random amount in a range, doubled
	// when the opponent is under a health threshold
	KindConditionalDoubleDamage Kind = "conditional_double_damage"

	// KindDescriptive abilities only carry display text; the resolver has no
	// behavior for them and callers fall back to their own handling
	KindDescriptive Kind = "descriptive"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindConditionalDoubleDamage, KindDescriptive:
		return true
	default:
		return false
	}
}

// Effect is the structured, resolved behavior of an ability.
// The set of implementations is closed: ConditionalDoubleDamage, MalformedEffect, DescriptiveEffect.
type Effect interface {
	Kind() Kind
	isEffect()
}

// MaxDamageLimit is the largest maximum damage that can still be doubled
// without overflowing int
const MaxDamageLimit = math.MaxInt / 2

// ConditionalDoubleDamage holds the parameters for a ranged hit that doubles
// when the opponent's health percentage is strictly below Threshold.
type ConditionalDoubleDamage struct {
	MinDamage int
	MaxDamage int
	Threshold int // percent, 1-100
}

func (ConditionalDoubleDamage) Kind() Kind { return KindConditionalDoubleDamage }
func (ConditionalDoubleDamage) isEffect()  {}

// Validate checks the parameter ranges
func (c ConditionalDoubleDamage) Validate() error {
	if c.MinDamage < 0 {
		return fmt.Errorf("minimum damage %d is negative", c.MinDamage)
	}
	if c.MinDamage > c.MaxDamage {
		return fmt.Errorf("minimum damage %d is above maximum %d", c.MinDamage, c.MaxDamage)
	}
	if c.MaxDamage > MaxDamageLimit {
		return fmt.Errorf("maximum damage %d is above the limit of %d", c.MaxDamage, MaxDamageLimit)
	}
	if c.Threshold < 1 || c.Threshold > 100 {
		return fmt.Errorf("health threshold %d%% is outside 1-100", c.Threshold)
	}
	return nil
}

// MalformedEffect marks an ability declared as conditional double damage whose
// description could not be turned into parameters.
type MalformedEffect struct {
	Reason string
}

func (MalformedEffect) Kind() Kind { return KindConditionalDoubleDamage }
func (MalformedEffect) isEffect()  {}

// DescriptiveEffect is the effect of a KindDescriptive ability
type DescriptiveEffect struct{}

func (DescriptiveEffect) Kind() Kind { return KindDescriptive }
func (DescriptiveEffect) isEffect()  {}
