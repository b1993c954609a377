package creature

import (
	"fmt"

	"github.com/cory-johannsen/laststand/internal/gameerr"
)

const (
	MinLevel = 1
	MaxLevel = 20
)

// attackBonuses is indexed by level-1. It is a lookup table, not a formula.
var attackBonuses = [MaxLevel][]int{
	{1},
	{2},
	{3},
	{4},
	{5},
	{6, 1},
	{7, 2},
	{8, 3},
	{9, 4},
	{10, 5},
	{11, 6, 1},
	{12, 7, 2},
	{13, 8, 3},
	{14, 9, 4},
	{15, 10, 5},
	{16, 11, 6, 1},
	{17, 12, 7, 2},
	{18, 13, 8, 3},
	{19, 14, 9, 4},
	{20, 15, 10, 5},
}

// AttackBonuses returns the attack-roll bonus of every attack a creature of
// the given level makes in one turn, in order.
//
// Postcondition: Returns a fresh copy, or an InvalidArgument error when level
// is outside [MinLevel, MaxLevel].
func AttackBonuses(level int) ([]int, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, gameerr.New(gameerr.CodeInvalidArgument,
			fmt.Sprintf("creature: level %d outside [%d, %d]", level, MinLevel, MaxLevel))
	}
	return append([]int(nil), attackBonuses[level-1]...), nil
}

// MaxHP is baseHP + con*level.
func MaxHP(baseHP, con, level int) int {
	return baseHP + con*level
}
