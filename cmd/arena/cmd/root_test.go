package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArena(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("ARENA_LOG_FORMAT", "text")
	t.Setenv("ARENA_LOG_LEVEL", "error")
	t.Setenv("ARENA_SEED", "7")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassesCommand(t *testing.T) {
	t.Setenv("ARENA_CATALOG_PATH", "")

	out, err := runArena(t, "classes")
	require.NoError(t, err)

	assert.Contains(t, out, "Dragon Slayer (1970 hp, 41-48 attack, 110 mana)")
	assert.Contains(t, out, "[60-90, x2 below 40%]")
	assert.Contains(t, out, "[50-100, x2 below 20%]")
	assert.Contains(t, out, "Spirit Tracker")
}

func TestCastCommand(t *testing.T) {
	t.Setenv("ARENA_CATALOG_PATH", "")

	out, err := runArena(t, "cast",
		"--class", "Dragon Slayer",
		"--ability", "Judgment of Fate",
		"--actor", "Astra",
		"--opponent", "Dummy",
		"--opponent-health", "100",
		"--opponent-max", "500")
	require.NoError(t, err)

	assert.Contains(t, out, "Dummy is below 40% health - Judgment of Fate deals double damage!")
	assert.Contains(t, out, "Astra casts Judgment of Fate and deals")
	assert.Contains(t, out, "Dummy: 0/500 health, survived=false")
}

func TestCastCommand_MalformedCatalogEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
classes:
  - name: Seer
    health: 900
    abilities:
      - name: Judgment of Fate
        description: Deal 60-90 damage
        kind: conditional_double_damage
`), 0o600))
	t.Setenv("ARENA_CATALOG_PATH", path)

	out, err := runArena(t, "cast", "--class", "Seer", "--ability", "Judgment of Fate",
		"--opponent-health", "100", "--opponent-max", "500")
	require.NoError(t, err)

	assert.Contains(t, out, "Judgment of Fate had no effect (malformed_description)")
}

func TestCastCommand_InvalidHealth(t *testing.T) {
	t.Setenv("ARENA_CATALOG_PATH", "")

	_, err := runArena(t, "cast", "--class", "Knight", "--ability", "Judgment of Fate",
		"--opponent-health", "0", "--opponent-max", "0")
	assert.Error(t, err)
}

func TestSimulateCommand(t *testing.T) {
	t.Setenv("ARENA_CATALOG_PATH", "")

	out, err := runArena(t, "simulate",
		"--class", "Dragon Slayer",
		"--ability", "Judgment of Fate",
		"--trials", "2000",
		"--workers", "4",
		"--opponent-health", "250",
		"--opponent-max", "500",
		"--histogram")
	require.NoError(t, err)

	assert.Contains(t, out, "Judgment of Fate x2000 vs 250/500 health")
	assert.Contains(t, out, "damage 60-90, bonus rate 0.0%, defeats 0")
	assert.Contains(t, out, "    60  ")
	assert.Contains(t, out, "    90  ")
}

func TestDuelCommand(t *testing.T) {
	t.Setenv("ARENA_CATALOG_PATH", "")

	out, err := runArena(t, "duel", "--challenger", "Dragon Slayer", "--opponent", "Dragon Slayer")
	require.NoError(t, err)

	assert.Contains(t, out, "Dragon Slayer (1) casts Judgment of Fate")
	assert.Contains(t, out, " attacks ")
	assert.Contains(t, out, "has been defeated!")
	assert.Regexp(t, `Dragon Slayer \([12]\) wins on turn \d+`, out)
}

func TestDuelCommand_TurnLimit(t *testing.T) {
	t.Setenv("ARENA_CATALOG_PATH", "")

	_, err := runArena(t, "duel", "--max-turns", "3")
	assert.True(t, arenaerr.IsFailedPrecondition(err))
}
