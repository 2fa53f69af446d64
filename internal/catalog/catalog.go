package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

//go:embed classes.yaml
var defaultClasses []byte

var validate = validator.New()

// Class is a playable class with its abilities already defined
type Class struct {
	Name        string
	Health      int
	AttackMin   int
	AttackMax   int
	Mana        int
	Description string
	Abilities   []*ability.Ability
}

// Ability looks up one of the class's abilities by name, case-insensitively
func (c *Class) Ability(name string) (*ability.Ability, error) {
	key := ability.Key(name)
	for _, ab := range c.Abilities {
		if ab.Key() == key {
			return ab, nil
		}
	}
	return nil, arenaerr.NotFoundf("class %s has no ability %q", c.Name, name).
		WithMeta("class", c.Name)
}

// Catalog is a read-only set of classes keyed by lowercased name
type Catalog struct {
	classes map[string]*Class
	order   []string
}

type document struct {
	Classes []classEntry `yaml:"classes" validate:"required,min=1,dive"`
}

type classEntry struct {
	Name        string         `yaml:"name" validate:"required"`
	Health      int            `yaml:"health" validate:"gt=0"`
	AttackMin   int            `yaml:"attack_min" validate:"gte=0"`
	AttackMax   int            `yaml:"attack_max" validate:"gtefield=AttackMin"`
	Mana        int            `yaml:"mana" validate:"gte=0"`
	Description string         `yaml:"description"`
	Abilities   []abilityEntry `yaml:"abilities" validate:"dive"`
}

type abilityEntry struct {
	Name        string `yaml:"name" validate:"required"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description" validate:"required"`
	Cooldown    int    `yaml:"cooldown" validate:"gte=0"`
	ManaCost    int    `yaml:"mana_cost" validate:"gte=0"`
	Kind        string `yaml:"kind" validate:"omitempty,oneof=conditional_double_damage descriptive"`
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultClasses))
}

// LoadFile reads a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, arenaerr.NotFoundf("catalog file %s does not exist", path)
		}
		return nil, arenaerr.Wrapf(err, "opening catalog %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Load parses and validates a YAML catalog
func Load(r io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return nil, arenaerr.WrapWithCode(err, arenaerr.CodeValidation, "parsing catalog")
	}

	if err := validate.Struct(doc); err != nil {
		return nil, arenaerr.WrapWithCode(err, arenaerr.CodeValidation, "invalid catalog")
	}

	cat := &Catalog{
		classes: make(map[string]*Class, len(doc.Classes)),
	}

	for _, entry := range doc.Classes {
		key := ability.Key(entry.Name)
		if _, exists := cat.classes[key]; exists {
			return nil, arenaerr.Validationf("class %s is defined twice", entry.Name)
		}

		class, err := buildClass(entry)
		if err != nil {
			return nil, err
		}

		cat.classes[key] = class
		cat.order = append(cat.order, key)
	}

	return cat, nil
}

func buildClass(entry classEntry) (*Class, error) {
	class := &Class{
		Name:        entry.Name,
		Health:      entry.Health,
		AttackMin:   entry.AttackMin,
		AttackMax:   entry.AttackMax,
		Mana:        entry.Mana,
		Description: entry.Description,
	}

	seen := make(map[string]bool, len(entry.Abilities))
	for _, abEntry := range entry.Abilities {
		ab, err := ability.Define(ability.Definition{
			Name:        abEntry.Name,
			IconName:    abEntry.Icon,
			Description: abEntry.Description,
			Cooldown:    abEntry.Cooldown,
			ManaCost:    abEntry.ManaCost,
			Kind:        ability.Kind(abEntry.Kind),
		})
		if err != nil {
			return nil, arenaerr.Wrapf(err, "class %s", entry.Name)
		}
		if seen[ab.Key()] {
			return nil, arenaerr.Validationf("class %s lists ability %s twice", entry.Name, ab.Name())
		}
		seen[ab.Key()] = true

		class.Abilities = append(class.Abilities, ab)
	}

	return class, nil
}

// Class returns a class by name, case-insensitively
func (c *Catalog) Class(name string) (*Class, error) {
	class, ok := c.classes[ability.Key(name)]
	if !ok {
		return nil, arenaerr.NotFoundf("class %q not found", name)
	}
	return class, nil
}

// Classes returns every class in file order
func (c *Catalog) Classes() []*Class {
	out := make([]*Class, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.classes[key])
	}
	return out
}

// Ability looks up a class's ability
func (c *Catalog) Ability(className, abilityName string) (*ability.Ability, error) {
	class, err := c.Class(className)
	if err != nil {
		return nil, err
	}
	return class.Ability(abilityName)
}
