package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/laststand/internal/frontend/console"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[90mdim\033[0m", console.Colorize(console.BrightBlack, "dim"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[31mhp: 42\033[0m", console.Colorf(console.Red, "hp: %d", 42))
}

func TestStripANSI(t *testing.T) {
	input := "\033[2J\033[H\033[31mred\033[0m normal"
	assert.Equal(t, "\033[2J\033[Hred normal", console.StripANSI(input), "only SGR sequences are stripped")
	assert.Equal(t, "plain", console.StripANSI("plain"))
	assert.Equal(t, "", console.StripANSI(""))
}

func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{console.Red, console.Yellow, console.White, console.BrightBlack, console.Bold, console.Dim}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 !']{0,50}`).Draw(t, "text")
		color := colors[rapid.IntRange(0, len(colors)-1).Draw(t, "color")]
		if got := console.StripANSI(console.Colorize(color, text)); got != text {
			t.Fatalf("StripANSI(Colorize(%q)) = %q", text, got)
		}
	})
}
