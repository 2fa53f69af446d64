package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/duel-arena/internal/catalog"
	"github.com/KirkDiggler/duel-arena/internal/config"
	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
	"github.com/KirkDiggler/duel-arena/internal/logging"
)

// app is the state shared by subcommands, filled in by the root pre-run
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
}

var state = &app{}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Duel arena ability tooling",
	Long: `arena resolves duel abilities from the class catalog.

Available commands:
  classes    List classes and their abilities
  cast       Resolve one ability against a target
  simulate   Resolve an ability many times and summarize the damage
  duel       Fight two classes until one falls`,
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "code", arenaerr.GetCode(err), "error", err)
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	state.cfg = cfg
	state.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level)

	if cfg.Catalog.Path != "" {
		state.catalog, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		state.catalog, err = catalog.Default()
	}
	if err != nil {
		return err
	}

	state.logger.Debug("catalog loaded", "classes", len(state.catalog.Classes()), "path", cfg.Catalog.Path)
	return nil
}
