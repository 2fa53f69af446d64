package dice

import (
	"fmt"
	"strings"
)

// RollResult is the outcome of a single roll request
type RollResult struct {
	Total    int   // RawTotal + Bonus
	Rolls    []int // individual die faces
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// String renders the roll as "total [faces]"
func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%d %s", r.Total, compact)
}

// rangeAsDie maps an inclusive [minValue, maxValue] range onto a single die
// and a flat bonus: 1d(max-min+1) + (min-1).
func rangeAsDie(minValue, maxValue int) (sides, bonus int) {
	return maxValue - minValue + 1, minValue - 1
}
