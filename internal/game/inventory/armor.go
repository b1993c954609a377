package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/content"
	"github.com/cory-johannsen/laststand/internal/game/grammar"
)

// ArmorDef defines the static properties of an armor piece loaded from YAML.
type ArmorDef struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Unique     bool   `yaml:"unique"`
	ArmorBonus int    `yaml:"armor_bonus"`
}

// Validate reports an error if the ArmorDef is missing required fields or contains illegal values.
// Precondition: def is non-nil.
// Postcondition: Returns nil iff the def is well-formed.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.ArmorBonus < 0 {
		errs = append(errs, errors.New("armor_bonus must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}

// LoadArmors reads all .yaml files in dir and returns parsed ArmorDef slice.
// Precondition: dir must be a readable directory.
// Postcondition: Returns non-nil slice and nil error on success; all returned defs pass Validate.
func LoadArmors(dir string) ([]*ArmorDef, error) {
	return content.LoadDir[ArmorDef](dir, "LoadArmors")
}

// Armor is a wearable armor instance granting a flat armor-class bonus.
type Armor struct {
	grammar.Noun
	bonus int
}

// NewArmor builds an Armor from its definition.
func NewArmor(def *ArmorDef) *Armor {
	return &Armor{Noun: grammar.NewNoun(def.Name, def.Unique), bonus: def.ArmorBonus}
}

// Bonus returns the armor-class bonus.
func (a *Armor) Bonus() int { return a.bonus }
