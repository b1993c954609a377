// Package grammar turns narration templates into finished prose: it derives
// articles for named things, binds pronouns for a subject/object pair, and
// resolves singular/plural inflection markers.
package grammar

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Gender selects a pronoun set.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Neuter Gender = "neuter"
	// You is the pseudo-gender used when a participant is the viewer.
	You Gender = "you"
)

// Pronouns is the four-form pronoun set for one gender.
type Pronouns struct {
	Reflexive  string // himself
	Possessive string // his
	Objective  string // him
	Subjective string // he
}

var pronouns = map[Gender]Pronouns{
	Male:   {Reflexive: "himself", Possessive: "his", Objective: "him", Subjective: "he"},
	Female: {Reflexive: "herself", Possessive: "her", Objective: "her", Subjective: "she"},
	Neuter: {Reflexive: "itself", Possessive: "its", Objective: "it", Subjective: "it"},
	You:    {Reflexive: "yourself", Possessive: "your", Objective: "you", Subjective: "you"},
}

// PronounsFor returns the pronoun set for g.
//
// Postcondition: ok is false iff g is not one of the four genders.
func PronounsFor(g Gender) (Pronouns, bool) {
	p, ok := pronouns[g]
	return p, ok
}

// ParseGender converts a content string into a Gender.
// The "you" pseudo-gender is reserved for the viewer and is rejected here.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(s)); g {
	case Male, Female, Neuter:
		return g, nil
	default:
		return "", fmt.Errorf("grammar: unknown gender %q", s)
	}
}

// UnmarshalYAML decodes a gender scalar, rejecting unknown values at load time.
func (g *Gender) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
