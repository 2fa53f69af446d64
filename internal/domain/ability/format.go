package ability

import "fmt"

// Describe renders the display text for the parameters. The output is
// accepted by ParseConditionalDoubleDamage.
func (c ConditionalDoubleDamage) Describe() string {
	return fmt.Sprintf("Deal %d-%d damage. If enemy is below %d%% health, deal double damage",
		c.MinDamage, c.MaxDamage, c.Threshold)
}
