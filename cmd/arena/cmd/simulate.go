package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/duel-arena/internal/services/simulation"
)

var simulateFlags struct {
	class             string
	ability           string
	trials            int
	workers           int
	opponentHealth    int
	opponentMaxHealth int
	histogram         bool
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Resolve an ability many times and summarize the damage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ab, err := state.catalog.Ability(simulateFlags.class, simulateFlags.ability)
		if err != nil {
			return err
		}

		workers := simulateFlags.workers
		if workers == 0 {
			workers = state.cfg.Simulation.Workers
		}

		report, err := simulation.Run(cmd.Context(), &simulation.Config{
			Ability:           ab,
			Trials:            simulateFlags.trials,
			Workers:           workers,
			Seed:              state.cfg.Simulation.Seed,
			OpponentHealth:    simulateFlags.opponentHealth,
			OpponentMaxHealth: simulateFlags.opponentMaxHealth,
			Logger:            state.logger,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s x%d vs %d/%d health\n", ab.Name(), report.Trials,
			simulateFlags.opponentHealth, simulateFlags.opponentMaxHealth)
		if report.Resolved == 0 {
			fmt.Fprintf(out, "no effect in any trial (%d fizzled)\n", report.NoEffect)
			return nil
		}
		fmt.Fprintf(out, "damage %d-%d, bonus rate %.1f%%, defeats %d\n",
			report.MinDamage, report.MaxDamage, 100*report.BonusRate(), report.Defeats)

		if simulateFlags.histogram {
			values := make([]int, 0, len(report.Damage))
			for damage := range report.Damage {
				values = append(values, damage)
			}
			sort.Ints(values)
			for _, damage := range values {
				fmt.Fprintf(out, "  %4d  %d\n", damage, report.Damage[damage])
			}
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateFlags.class, "class", "Dragon Slayer", "class that owns the ability")
	simulateCmd.Flags().StringVar(&simulateFlags.ability, "ability", "Judgment of Fate", "ability to resolve")
	simulateCmd.Flags().IntVar(&simulateFlags.trials, "trials", 1000, "number of resolutions")
	simulateCmd.Flags().IntVar(&simulateFlags.workers, "workers", 0, "parallel workers (default ARENA_SIM_WORKERS)")
	simulateCmd.Flags().IntVar(&simulateFlags.opponentHealth, "opponent-health", 100, "target's current health")
	simulateCmd.Flags().IntVar(&simulateFlags.opponentMaxHealth, "opponent-max", 500, "target's maximum health")
	simulateCmd.Flags().BoolVar(&simulateFlags.histogram, "histogram", false, "print the damage histogram")
	rootCmd.AddCommand(simulateCmd)
}
