package creature

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/content"
	"github.com/cory-johannsen/laststand/internal/game/inventory"
)

// Anatomy is a named body-part table shared by creatures of one build.
type Anatomy struct {
	ID    string          `yaml:"id"`
	Parts inventory.Parts `yaml:"parts"`
}

// Validate requires light, medium and heavy parts. Fatal parts are optional.
func (a *Anatomy) Validate() error {
	if a.ID == "" {
		return errors.New("anatomy: id must not be empty")
	}
	if err := a.Parts.Validate(inventory.TierLight, inventory.TierMedium, inventory.TierHeavy); err != nil {
		return fmt.Errorf("anatomy %q: %w", a.ID, err)
	}
	return nil
}

// LoadAnatomies reads every *.yaml file in dir as an Anatomy.
func LoadAnatomies(dir string) ([]*Anatomy, error) {
	return content.LoadDir[Anatomy](dir, "LoadAnatomies")
}

// Stumbles holds the flourish lines narrated before a devastating blow.
// Opening lines are used on the first combat round, Later lines afterwards.
type Stumbles struct {
	Opening []string `yaml:"opening"`
	Later   []string `yaml:"later"`
}

// ForRound returns the pool for the given combat round.
func (s Stumbles) ForRound(round int) []string {
	if round <= 1 {
		return s.Opening
	}
	return s.Later
}

// StumbleSet is a named Stumbles pool loaded from YAML.
type StumbleSet struct {
	ID       string `yaml:"id"`
	Stumbles `yaml:",inline"`
}

// Validate requires both pools to be non-empty.
func (s *StumbleSet) Validate() error {
	if s.ID == "" {
		return errors.New("stumbles: id must not be empty")
	}
	if len(s.Opening) == 0 || len(s.Later) == 0 {
		return fmt.Errorf("stumbles %q: opening and later pools must not be empty", s.ID)
	}
	return nil
}

// LoadStumbleSets reads every *.yaml file in dir as a StumbleSet.
func LoadStumbleSets(dir string) ([]*StumbleSet, error) {
	return content.LoadDir[StumbleSet](dir, "LoadStumbleSets")
}
