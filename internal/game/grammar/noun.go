package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Noun is a named thing with precomputed articles.
//
// Invariant: Definite and Indefinite are derived once by NewNoun and never
// recomputed; renaming is not supported.
type Noun struct {
	name       string
	unique     bool
	definite   string
	indefinite string
}

// NewNoun derives the article forms for name. Unique things use the bare name
// for both forms; others get "the X" and "a X"/"an X", the latter chosen by a
// first-letter vowel check.
func NewNoun(name string, unique bool) Noun {
	n := Noun{name: name, unique: unique, definite: name, indefinite: name}
	if unique {
		return n
	}
	n.definite = "the " + name
	if startsWithVowel(name) {
		n.indefinite = "an " + name
	} else {
		n.indefinite = "a " + name
	}
	return n
}

// Name returns the proper name.
func (n Noun) Name() string { return n.name }

// IsUnique reports whether the thing is one of a kind.
func (n Noun) IsUnique() bool { return n.unique }

// Definite returns "the X", or the bare name for unique things.
func (n Noun) Definite() string { return n.definite }

// Indefinite returns "a X"/"an X", or the bare name for unique things.
func (n Noun) Indefinite() string { return n.indefinite }

func startsWithVowel(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
