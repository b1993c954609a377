package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/laststand/internal/gameerr"
)

// Expression represents a parsed dice expression ready to be rolled.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat bonus, never negative
}

// String returns the raw expression.
func (e Expression) String() string { return e.Raw }

// Parse parses a dice expression string into an Expression.
// Supported forms are exactly "<count>d<sides>" and "<count>d<sides>+<bonus>",
// all non-negative decimal integers with no whitespace.
//
// Postcondition: Returns a populated Expression or a ParseError.
func Parse(expr string) (Expression, error) {
	countStr, rest, ok := strings.Cut(expr, "d")
	if !ok {
		return Expression{}, parseErr(expr, "missing 'd'")
	}
	sidesStr, bonusStr, hasBonus := strings.Cut(rest, "+")

	count, err := parseUint(countStr)
	if err != nil {
		return Expression{}, parseErr(expr, "invalid die count: "+err.Error())
	}
	sides, err := parseUint(sidesStr)
	if err != nil {
		return Expression{}, parseErr(expr, "invalid die sides: "+err.Error())
	}
	bonus := 0
	if hasBonus {
		bonus, err = parseUint(bonusStr)
		if err != nil {
			return Expression{}, parseErr(expr, "invalid bonus: "+err.Error())
		}
	}

	return Expression{
		Raw:      expr,
		Count:    count,
		Sides:    sides,
		Modifier: bonus,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level constants.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// parseUint accepts only a non-empty run of ASCII digits.
func parseUint(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("unexpected character %q", s[i])
		}
	}
	return strconv.Atoi(s)
}

func parseErr(expr, reason string) error {
	return gameerr.New(gameerr.CodeParse, fmt.Sprintf("dice: %q: %s", expr, reason))
}
