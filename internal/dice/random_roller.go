package dice

import (
	"math"
	"math/rand"
	"sync"
	"time"

	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

// randomRoller implements Roller on top of math/rand
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is fixed by seed.
// Useful for replaying a simulation.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, arenaerr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, arenaerr.InvalidArgumentf("invalid dice size %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		rawTotal += roll
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// RollRange implements Roller.RollRange
func (r *randomRoller) RollRange(minValue, maxValue int) (*RollResult, error) {
	if minValue < 0 {
		return nil, arenaerr.InvalidArgumentf("range minimum %d is negative", minValue)
	}
	if minValue > maxValue {
		return nil, arenaerr.InvalidArgumentf("range minimum %d is above maximum %d", minValue, maxValue)
	}
	if maxValue-minValue == math.MaxInt {
		return nil, arenaerr.InvalidArgumentf("range %d-%d is too wide to roll", minValue, maxValue)
	}

	sides, bonus := rangeAsDie(minValue, maxValue)
	return r.Roll(1, sides, bonus)
}
