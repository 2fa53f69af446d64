package duel

import (
	"github.com/KirkDiggler/duel-arena/internal/catalog"
	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	"github.com/KirkDiggler/duel-arena/internal/domain/combat"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/KirkDiggler/duel-arena/internal/uuid"
)

// Fighter is a combatant plus the resources it spends on abilities
type Fighter struct {
	Combatant *combat.Combatant
	Class     string
	AttackMin int
	AttackMax int
	Mana      int
	MaxMana   int
	Abilities []*ability.Ability

	cooldowns map[string]int // ability key -> turns remaining
}

// NewFighter builds a fighter from a catalog class at full health and mana
func NewFighter(gen uuid.Generator, name string, class *catalog.Class) (*Fighter, error) {
	if class == nil {
		return nil, arenaerr.InvalidArgument("class is required")
	}
	if name == "" {
		name = class.Name
	}
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	c, err := combat.NewCombatant(gen.New(), name, class.Health)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "creating fighter %s", name)
	}

	return &Fighter{
		Combatant: c,
		Class:     class.Name,
		AttackMin: class.AttackMin,
		AttackMax: class.AttackMax,
		Mana:      class.Mana,
		MaxMana:   class.Mana,
		Abilities: class.Abilities,
		cooldowns: make(map[string]int),
	}, nil
}

// Ability finds one of the fighter's abilities by name
func (f *Fighter) Ability(name string) (*ability.Ability, error) {
	key := ability.Key(name)
	for _, ab := range f.Abilities {
		if ab.Key() == key {
			return ab, nil
		}
	}
	return nil, arenaerr.NotFoundf("%s does not know %q", f.Combatant.Name, name).
		WithMeta("fighter", f.Combatant.Name)
}

// CooldownRemaining returns how many of the fighter's turns must start before
// the ability is usable again
func (f *Fighter) CooldownRemaining(abilityName string) int {
	return f.cooldowns[ability.Key(abilityName)]
}

func (f *Fighter) startCooldown(ab *ability.Ability) {
	if f.cooldowns == nil {
		f.cooldowns = make(map[string]int)
	}
	if ab.Cooldown() > 0 {
		f.cooldowns[ab.Key()] = ab.Cooldown()
	}
}

func (f *Fighter) tickCooldowns() {
	for key, remaining := range f.cooldowns {
		if remaining <= 1 {
			delete(f.cooldowns, key)
			continue
		}
		f.cooldowns[key] = remaining - 1
	}
}

// regenMana restores up to amount mana, never past MaxMana, and returns the gain
func (f *Fighter) regenMana(amount int) int {
	if amount <= 0 || f.Mana >= f.MaxMana {
		return 0
	}
	before := f.Mana
	f.Mana = min(f.Mana+amount, f.MaxMana)
	return f.Mana - before
}
