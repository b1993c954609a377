// Package event defines the narration stream handed from the combat engine to
// a renderer. Pauses are data: nothing in this package waits.
package event

import (
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/grammar"
)

// Kind distinguishes prose lines from pacing directives.
type Kind int

const (
	KindText Kind = iota
	KindPause
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Style is a rendering hint for text events.
type Style int

const (
	StyleNormal Style = iota
	// StyleStatus marks hit-point summaries, drawn dimmed.
	StyleStatus
)

// Event is an immutable text line or pause directive.
type Event struct {
	kind  Kind
	text  string
	style Style
	pause int
}

func (e Event) Kind() Kind     { return e.kind }
func (e Event) Text() string   { return e.text }
func (e Event) Style() Style   { return e.style }
func (e Event) IsText() bool   { return e.kind == KindText }
func (e Event) String() string { return e.kind.String() + ":" + e.describe() }

func (e Event) describe() string {
	if e.kind == KindPause {
		return fmt.Sprintf("%d", e.pause)
	}
	return e.text
}

// Pause reports how many time units the renderer waits before revealing the
// next event. ok is false for text events.
func (e Event) Pause() (units int, ok bool) {
	return e.pause, e.kind == KindPause
}

// Text returns a prose event with its first letter capitalized.
func Text(s string) Event {
	return Event{kind: KindText, text: grammar.Capitalize(s)}
}

// Pause returns a pacing directive of the given number of time units.
//
// Precondition: units >= 0; panics otherwise.
func Pause(units int) Event {
	if units < 0 {
		panic(fmt.Sprintf("event: Pause called with negative units %d", units))
	}
	return Event{kind: KindPause, pause: units}
}

// Named is anything with article forms.
type Named interface {
	Name() string
	Definite() string
	Indefinite() string
}

// Vital is a Named thing with hit points.
type Vital interface {
	Named
	HP() int
	MaxHP() int
}

// Begin announces a fight between p1 and p2.
func Begin(p1, p2 Named) Event {
	return Text(fmt.Sprintf("%s and %s close in and begin to fight!", p1.Definite(), p2.Definite()))
}

// Status summarizes both fighters' hit points, second fighter first.
func Status(p1, p2 Vital) Event {
	e := Text(fmt.Sprintf("(%s %s)", vitals(p2), vitals(p1)))
	e.style = StyleStatus
	return e
}

func vitals(v Vital) string {
	return fmt.Sprintf("%s: %d/%d HP", v.Name(), v.HP(), v.MaxHP())
}

// Death announces that defender has been killed.
func Death(defender Named) Event {
	return Text(defender.Definite() + " has been killed!")
}

// Intro announces a challenger and the weapon it carries.
func Intro(challenger, weapon Named) Event {
	return Text(fmt.Sprintf("%s wielding %s approaches!", challenger.Indefinite(), weapon.Indefinite()))
}

// Conclusion sums up a gauntlet that ended with the hero's death.
func Conclusion(kills int, challenger, hero Named) Event {
	return Text(fmt.Sprintf("After killing %d %ss, %s died.", kills, challenger.Name(), hero.Name()))
}
