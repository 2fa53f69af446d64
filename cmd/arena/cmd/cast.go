package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/duel-arena/internal/dice"
	"github.com/KirkDiggler/duel-arena/internal/domain/combat"
	"github.com/KirkDiggler/duel-arena/internal/services/resolution"
)

var castFlags struct {
	class             string
	ability           string
	actor             string
	opponent          string
	opponentHealth    int
	opponentMaxHealth int
}

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Resolve one ability against a target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ab, err := state.catalog.Ability(castFlags.class, castFlags.ability)
		if err != nil {
			return err
		}

		roller := dice.NewRandomRoller()
		if state.cfg.Simulation.Seed != 0 {
			roller = dice.NewSeededRoller(state.cfg.Simulation.Seed)
		}
		svc := resolution.NewService(&resolution.ServiceConfig{
			DiceRoller: roller,
			Logger:     state.logger,
		})

		actor := &combat.Combatant{Name: castFlags.actor, Health: 1, MaxHealth: 1}
		opponent := &combat.Combatant{
			Name:      castFlags.opponent,
			Health:    castFlags.opponentHealth,
			MaxHealth: castFlags.opponentMaxHealth,
		}

		result, err := svc.Resolve(ab, actor, opponent)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.HadEffect() {
			fmt.Fprintf(out, "%s had no effect (%s): %s\n", ab.Name(), result.Status, result.Reason)
			return nil
		}
		for _, line := range result.Messages {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "%s: %d/%d health, survived=%t\n",
			opponent.Name, opponent.Health, opponent.MaxHealth, result.Survived)
		return nil
	},
}

func init() {
	castCmd.Flags().StringVar(&castFlags.class, "class", "Dragon Slayer", "class that owns the ability")
	castCmd.Flags().StringVar(&castFlags.ability, "ability", "Judgment of Fate", "ability to resolve")
	castCmd.Flags().StringVar(&castFlags.actor, "actor", "Player", "name of the caster")
	castCmd.Flags().StringVar(&castFlags.opponent, "opponent", "Opponent", "name of the target")
	castCmd.Flags().IntVar(&castFlags.opponentHealth, "opponent-health", 100, "target's current health")
	castCmd.Flags().IntVar(&castFlags.opponentMaxHealth, "opponent-max", 500, "target's maximum health")
	rootCmd.AddCommand(castCmd)
}
