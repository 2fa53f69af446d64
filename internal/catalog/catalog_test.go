package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	classes := cat.Classes()
	require.Len(t, classes, 4)
	assert.Equal(t, "Dragon Slayer", classes[0].Name)
	assert.Equal(t, "Spirit Tracker", classes[3].Name)

	t.Run("judgment of fate is parsed at load time", func(t *testing.T) {
		tests := []struct {
			class string
			want  ability.ConditionalDoubleDamage
		}{
			{class: "Dragon Slayer", want: ability.ConditionalDoubleDamage{MinDamage: 60, MaxDamage: 90, Threshold: 40}},
			{class: "knight", want: ability.ConditionalDoubleDamage{MinDamage: 50, MaxDamage: 100, Threshold: 20}},
		}

		for _, tt := range tests {
			t.Run(tt.class, func(t *testing.T) {
				ab, err := cat.Ability(tt.class, "judgment of fate")
				require.NoError(t, err)
				assert.Equal(t, tt.want, ab.Effect())
				assert.Equal(t, 8, ab.Cooldown())
				assert.Equal(t, 50, ab.ManaCost())
			})
		}
	})

	t.Run("injected ranged abilities are descriptive", func(t *testing.T) {
		warden, err := cat.Class("Elemental Warden")
		require.NoError(t, err)
		assert.Equal(t, 1000, warden.Health)
		assert.Equal(t, 10, warden.AttackMin)
		assert.Equal(t, 18, warden.AttackMax)
		require.Len(t, warden.Abilities, 5)

		fireball, err := warden.Ability("Fireball")
		require.NoError(t, err)
		assert.Equal(t, ability.KindDescriptive, fireball.Kind())
		assert.Equal(t, "Flame", fireball.IconName())
	})

	t.Run("unknown lookups", func(t *testing.T) {
		_, err := cat.Class("Bard")
		assert.True(t, arenaerr.IsNotFound(err))

		_, err = cat.Ability("Knight", "Fireball")
		assert.True(t, arenaerr.IsNotFound(err))
		assert.Equal(t, "Knight", arenaerr.GetMeta(err)["class"])
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no classes",
			yaml: "classes: []\n",
		},
		{
			name: "unknown field",
			yaml: `
classes:
  - name: Knight
    health: 100
    armor: 5
`,
		},
		{
			name: "zero health",
			yaml: `
classes:
  - name: Knight
    health: 0
`,
		},
		{
			name: "attack range inverted",
			yaml: `
classes:
  - name: Knight
    health: 100
    attack_min: 30
    attack_max: 10
`,
		},
		{
			name: "unknown ability kind",
			yaml: `
classes:
  - name: Knight
    health: 100
    abilities:
      - name: Rally
        description: Restore 100 health points
        kind: heal
`,
		},
		{
			name: "negative cooldown",
			yaml: `
classes:
  - name: Knight
    health: 100
    abilities:
      - name: Rally
        description: Restore 100 health points
        cooldown: -1
`,
		},
		{
			name: "duplicate class",
			yaml: `
classes:
  - name: Knight
    health: 100
  - name: knight
    health: 200
`,
		},
		{
			name: "duplicate ability",
			yaml: `
classes:
  - name: Knight
    health: 100
    abilities:
      - name: Rally
        description: Restore 100 health points
      - name: rally
        description: Restore 50 health points
`,
		},
		{
			name: "not yaml",
			yaml: "classes: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.True(t, arenaerr.IsValidation(err), "got %v", err)
		})
	}
}

func TestLoad_MalformedConditionalStillLoads(t *testing.T) {
	cat, err := Load(strings.NewReader(`
classes:
  - name: Seer
    health: 900
    abilities:
      - name: Judgment of Fate
        description: Deal 60-90 damage
        kind: conditional_double_damage
`))
	require.NoError(t, err)

	ab, err := cat.Ability("Seer", "Judgment of Fate")
	require.NoError(t, err)
	assert.IsType(t, ability.MalformedEffect{}, ab.Effect())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
classes:
  - name: Knight
    health: 1600
    attack_min: 31
    attack_max: 38
    mana: 110
`), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)

	knight, err := cat.Class("Knight")
	require.NoError(t, err)
	assert.Equal(t, 1600, knight.Health)
	assert.Empty(t, knight.Abilities)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, arenaerr.IsNotFound(err))
}
