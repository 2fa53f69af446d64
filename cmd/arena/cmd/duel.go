package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/duel-arena/internal/dice"
	"github.com/KirkDiggler/duel-arena/internal/services/duel"
	"github.com/KirkDiggler/duel-arena/internal/services/resolution"
)

var duelFlags struct {
	challenger string
	opponent   string
	maxTurns   int
	manaRegen  int
}

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Fight two classes until one falls",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		challengerClass, err := state.catalog.Class(duelFlags.challenger)
		if err != nil {
			return err
		}
		opponentClass, err := state.catalog.Class(duelFlags.opponent)
		if err != nil {
			return err
		}

		challenger, err := duel.NewFighter(nil, "", challengerClass)
		if err != nil {
			return err
		}
		opponent, err := duel.NewFighter(nil, "", opponentClass)
		if err != nil {
			return err
		}
		if challenger.Combatant.Name == opponent.Combatant.Name {
			challenger.Combatant.Name += " (1)"
			opponent.Combatant.Name += " (2)"
		}

		roller := dice.NewRandomRoller()
		if state.cfg.Simulation.Seed != 0 {
			roller = dice.NewSeededRoller(state.cfg.Simulation.Seed)
		}

		d, err := duel.New(&duel.Config{
			Challenger: challenger,
			Opponent:   opponent,
			Resolver: resolution.NewService(&resolution.ServiceConfig{
				DiceRoller: roller,
				Logger:     state.logger,
			}),
			DiceRoller: roller,
			ManaRegen:  duelFlags.manaRegen,
			Logger:     state.logger,
		})
		if err != nil {
			return err
		}

		winner, playErr := d.Play(cmd.Context(), duelFlags.maxTurns)

		out := cmd.OutOrStdout()
		for _, line := range d.Log() {
			fmt.Fprintln(out, line)
		}
		if playErr != nil {
			return playErr
		}

		fmt.Fprintf(out, "%s wins on turn %d with %d/%d health\n",
			winner.Combatant.Name, d.Turn(), winner.Combatant.Health, winner.Combatant.MaxHealth)
		return nil
	},
}

func init() {
	duelCmd.Flags().StringVar(&duelFlags.challenger, "challenger", "Dragon Slayer", "class that acts first")
	duelCmd.Flags().StringVar(&duelFlags.opponent, "opponent", "Knight", "class that acts second")
	duelCmd.Flags().IntVar(&duelFlags.maxTurns, "max-turns", 500, "give up after this many turns")
	duelCmd.Flags().IntVar(&duelFlags.manaRegen, "mana-regen", duel.DefaultManaRegen, "mana recovered at the start of each turn, negative disables")
	rootCmd.AddCommand(duelCmd)
}
