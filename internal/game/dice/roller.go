package dice

import (
	"fmt"

	"github.com/cory-johannsen/laststand/internal/gameerr"
)

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count and every die is in [1, Sides].
// Returns an InvalidArgument error when dice are requested with fewer than one side.
func Roll(expr Expression, src Source) (RollResult, error) {
	if expr.Count > 0 && expr.Sides < 1 {
		return RollResult{}, gameerr.New(gameerr.CodeInvalidArgument,
			fmt.Sprintf("dice: cannot roll %d dice with %d sides", expr.Count, expr.Sides))
	}
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	raw := expr.Raw
	if raw == "" {
		raw = format(expr.Count, expr.Sides, expr.Modifier)
	}
	return RollResult{
		Expression: raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}, nil
}

// RollDice sums count independent draws from [1, sides] and adds bonus.
//
// Precondition: count >= 0, bonus >= 0; src must be non-nil.
// Postcondition: Returns a RollResult whose Total() is in [count+bonus, count*sides+bonus].
func RollDice(count, sides, bonus int, src Source) (RollResult, error) {
	if count < 0 || bonus < 0 {
		return RollResult{}, gameerr.New(gameerr.CodeInvalidArgument,
			fmt.Sprintf("dice: count and bonus must be non-negative, got %d and %d", count, bonus))
	}
	return Roll(Expression{
		Raw:      format(count, sides, bonus),
		Count:    count,
		Sides:    sides,
		Modifier: bonus,
	}, src)
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RollResult or a parse/roll error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src)
}

func format(count, sides, bonus int) string {
	if bonus == 0 {
		return fmt.Sprintf("%dd%d", count, sides)
	}
	return fmt.Sprintf("%dd%d+%d", count, sides, bonus)
}
