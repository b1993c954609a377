package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/laststand/internal/game/dice"
	"github.com/cory-johannsen/laststand/internal/gameerr"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in                     string
		count, sides, modifier int
	}{
		{"1d20", 1, 20, 0},
		{"2d6", 2, 6, 0},
		{"2d6+1", 2, 6, 1},
		{"1d8+0", 1, 8, 0},
		{"0d4+3", 0, 4, 3},
		{"10d10+10", 10, 10, 10},
	}
	for _, tc := range tests {
		e, err := dice.Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.in, e.Raw)
		assert.Equal(t, tc.count, e.Count, "count for %q", tc.in)
		assert.Equal(t, tc.sides, e.Sides, "sides for %q", tc.in)
		assert.Equal(t, tc.modifier, e.Modifier, "modifier for %q", tc.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "d20", "2d", "2x6", "2d6-1", "2d6+", "2 d6", "2d6 +1", "+2d6", "2d6+1+1", "-1d6", "1d6d6", "abc",
	} {
		_, err := dice.Parse(in)
		assert.ErrorIs(t, err, gameerr.ErrParse, "input %q must be rejected", in)
	}
}

func TestParse_Property_RoundTripsWellFormed(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 50).Draw(rt, "count")
		sides := rapid.IntRange(1, 100).Draw(rt, "sides")
		bonus := rapid.IntRange(0, 50).Draw(rt, "bonus")
		in := fmt.Sprintf("%dd%d+%d", count, sides, bonus)

		e, err := dice.Parse(in)
		require.NoError(rt, err)
		assert.Equal(rt, count, e.Count)
		assert.Equal(rt, sides, e.Sides)
		assert.Equal(rt, bonus, e.Modifier)
	})
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("oops") })
	assert.NotPanics(t, func() { dice.MustParse("1d4") })
}
