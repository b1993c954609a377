package creature

import (
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/content"
	"github.com/cory-johannsen/laststand/internal/game/grammar"
)

// Template defines a reusable creature archetype loaded from YAML.
type Template struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Gender   grammar.Gender `yaml:"gender"`
	Unique   bool           `yaml:"unique"`
	Level    int            `yaml:"level"`
	Str      int            `yaml:"str"`
	Dex      int            `yaml:"dex"`
	Con      int            `yaml:"con"`
	BaseHP   int            `yaml:"base_hp"`
	Anatomy  string         `yaml:"anatomy"`
	Stumbles string         `yaml:"stumbles"`
	// Weapon is a weapon ID; empty means a random weapon for every spawn.
	Weapon string `yaml:"weapon"`
	// Armor is an armor ID; empty means unarmored.
	Armor string `yaml:"armor"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID, Name and Gender are set, Level is in
// [MinLevel, MaxLevel], the starting max HP is >= 1, and the anatomy and
// stumble references are set; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("creature template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("creature template %q: name must not be empty", t.ID)
	}
	if t.Gender == "" {
		return fmt.Errorf("creature template %q: gender must not be empty", t.ID)
	}
	if t.Level < MinLevel || t.Level > MaxLevel {
		return fmt.Errorf("creature template %q: level must be in [%d, %d]", t.ID, MinLevel, MaxLevel)
	}
	if MaxHP(t.BaseHP, t.Con, t.Level) < 1 {
		return fmt.Errorf("creature template %q: base_hp + con*level must be >= 1", t.ID)
	}
	if t.Anatomy == "" {
		return fmt.Errorf("creature template %q: anatomy must not be empty", t.ID)
	}
	if t.Stumbles == "" {
		return fmt.Errorf("creature template %q: stumbles must not be empty", t.ID)
	}
	return nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	return content.LoadDir[Template](dir, "LoadTemplates")
}
