// Package dice provides the core randomness abstraction and roll-result types
// for the combat engine. Every random draw in the engine flows through a
// Source so that an encounter can be replayed from a seed.
package dice

import (
	"fmt"

	"github.com/cory-johannsen/laststand/internal/gameerr"
)

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6+1"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat bonus
}

// Total returns the sum of all die results plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6+1 → [4 5] +1 = 10"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	diceStr := fmt.Sprintf("%v", r.Dice)
	modStr := fmt.Sprintf("%+d", r.Modifier)
	return fmt.Sprintf("%s → %s %s = %d", r.Expression, diceStr, modStr, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
//
//go:generate mockgen -destination=mock/mock_source.go -package=mockdice -source=dice.go
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// D20 rolls a single twenty-sided die.
//
// Postcondition: Returns a value in [1, 20].
func D20(src Source) int {
	return src.Intn(20) + 1
}

// Choice returns a uniformly chosen element of items.
//
// Precondition: src must be non-nil.
// Postcondition: Returns an element of items, or an InvalidArgument error when items is empty.
func Choice[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, gameerr.New(gameerr.CodeInvalidArgument, "dice: Choice called with an empty list")
	}
	return items[src.Intn(len(items))], nil
}
