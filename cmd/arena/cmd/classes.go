package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/duel-arena/internal/domain/ability"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List classes and their abilities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, class := range state.catalog.Classes() {
			fmt.Fprintf(out, "%s (%d hp, %d-%d attack, %d mana) - %s\n",
				class.Name, class.Health, class.AttackMin, class.AttackMax, class.Mana, class.Description)
			for _, ab := range class.Abilities {
				fmt.Fprintf(out, "  %-18s cd %d, %2d mana  %s%s\n",
					ab.Name(), ab.Cooldown(), ab.ManaCost(), ab.Description(), kindMarker(ab))
			}
		}
		return nil
	},
}

func kindMarker(ab *ability.Ability) string {
	switch effect := ab.Effect().(type) {
	case ability.ConditionalDoubleDamage:
		return fmt.Sprintf("  [%d-%d, x2 below %d%%]", effect.MinDamage, effect.MaxDamage, effect.Threshold)
	case ability.MalformedEffect:
		return "  [malformed: " + effect.Reason + "]"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
