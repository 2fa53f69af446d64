package ability

import (
	"strings"

	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

// Definition is the raw, display-oriented shape of an ability as it appears in class data
type Definition struct {
	Name        string
	IconName    string
	Description string
	Cooldown    int // turns
	ManaCost    int
	Kind        Kind // defaults to KindDescriptive
}

// Ability is an immutable combat action. Its Effect is worked out once, when
// the ability is defined, so resolving it never re-reads the description.
type Ability struct {
	name        string
	iconName    string
	description string
	cooldown    int
	manaCost    int
	effect      Effect
}

// Define builds an Ability from a definition.
// A conditional double damage ability with an unreadable description is still
// defined; its effect is a MalformedEffect so resolution can report it.
func Define(def Definition) (*Ability, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, arenaerr.Validationf("ability name is required")
	}
	if def.Cooldown < 0 {
		return nil, arenaerr.Validationf("ability %s has negative cooldown %d", name, def.Cooldown).
			WithMeta("ability", name)
	}
	if def.ManaCost < 0 {
		return nil, arenaerr.Validationf("ability %s has negative mana cost %d", name, def.ManaCost).
			WithMeta("ability", name)
	}

	kind := def.Kind
	if kind == "" {
		kind = KindDescriptive
	}
	if !kind.Valid() {
		return nil, arenaerr.Validationf("ability %s has unknown kind %q", name, kind).
			WithMeta("ability", name)
	}

	var effect Effect
	switch kind {
	case KindConditionalDoubleDamage:
		params, reason := parseConditionalDoubleDamage(def.Description)
		if reason != "" {
			effect = MalformedEffect{Reason: reason}
		} else {
			effect = params
		}
	default:
		effect = DescriptiveEffect{}
	}

	return &Ability{
		name:        name,
		iconName:    def.IconName,
		description: def.Description,
		cooldown:    def.Cooldown,
		manaCost:    def.ManaCost,
		effect:      effect,
	}, nil
}

// NewConditionalDoubleDamage builds an ability straight from structured
// parameters. The description is generated from them.
func NewConditionalDoubleDamage(name string, params ConditionalDoubleDamage, cooldown, manaCost int) (*Ability, error) {
	if err := params.Validate(); err != nil {
		return nil, arenaerr.WrapWithCode(err, arenaerr.CodeValidation, "invalid conditional double damage parameters").
			WithMeta("ability", name)
	}

	return Define(Definition{
		Name:        name,
		Description: params.Describe(),
		Cooldown:    cooldown,
		ManaCost:    manaCost,
		Kind:        KindConditionalDoubleDamage,
	})
}

// Name returns the display name
func (a *Ability) Name() string { return a.name }

// IconName returns the icon identifier used by the UI
func (a *Ability) IconName() string { return a.iconName }

// Description returns the display text
func (a *Ability) Description() string { return a.description }

// Cooldown returns the number of turns before the ability can be used again
func (a *Ability) Cooldown() int { return a.cooldown }

// ManaCost returns the mana spent per use
func (a *Ability) ManaCost() int { return a.manaCost }

// Kind returns the ability's resolution kind
func (a *Ability) Kind() Kind { return a.effect.Kind() }

// Effect returns the structured effect
func (a *Ability) Effect() Effect { return a.effect }

// Key returns the lookup key for the ability: its lowercased name
func (a *Ability) Key() string { return Key(a.name) }

// Key normalizes an ability name for lookups
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
