package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/content"
)

// VerbSet is a named table of attack verbs per severity tier, shared by
// weapons of the same damage kind (pierce, slash, bludgeon).
type VerbSet struct {
	ID    string `yaml:"id"`
	Verbs Parts  `yaml:"verbs"`
}

// Validate checks that the VerbSet satisfies its invariants.
//
// Postcondition: returns nil iff ID is set and light, medium and heavy verbs exist.
func (v *VerbSet) Validate() error {
	var errs []error
	if v.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if err := v.Verbs.Validate(TierLight, TierMedium, TierHeavy); err != nil {
		errs = append(errs, err)
	}
	if v.Verbs.Has(TierFatal) {
		errs = append(errs, errors.New("verbs must not define a fatal tier; lethal hits use heavy verbs"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("verb set validation failed: %v", errs)
	}
	return nil
}

// LoadVerbSets reads all *.yaml files from dir as VerbSets.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid VerbSets or the first encountered error.
func LoadVerbSets(dir string) ([]*VerbSet, error) {
	return content.LoadDir[VerbSet](dir, "LoadVerbSets")
}
