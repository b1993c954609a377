// Package inventory provides weapon and armor definitions, their YAML loaders,
// and the runtime equipment wielded by creatures.
package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/content"
	"github.com/cory-johannsen/laststand/internal/game/dice"
	"github.com/cory-johannsen/laststand/internal/game/grammar"
)

// MaxCritRange is the widest crit range a weapon may declare: a range of 19
// makes every natural roll a critical.
const MaxCritRange = 19

// WeaponDef defines the static properties of a weapon loaded from YAML.
type WeaponDef struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Unique         bool   `yaml:"unique"`
	Damage         string `yaml:"damage"`
	Verbs          string `yaml:"verbs"` // VerbSet ID
	CritRange      int    `yaml:"crit_range"`
	CritMultiplier int    `yaml:"crit_multiplier"`
}

// Validate checks that the WeaponDef satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if _, err := dice.Parse(w.Damage); err != nil {
		errs = append(errs, err)
	}
	if w.Verbs == "" {
		errs = append(errs, errors.New("verbs must name a verb set"))
	}
	if w.CritRange < 0 || w.CritRange > MaxCritRange {
		errs = append(errs, fmt.Errorf("crit_range must be in [0, %d], got %d", MaxCritRange, w.CritRange))
	}
	if w.CritMultiplier < 1 {
		errs = append(errs, fmt.Errorf("crit_multiplier must be >= 1, got %d", w.CritMultiplier))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// LoadWeapons reads all *.yaml files from dir, parses each as a WeaponDef,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid WeaponDefs or the first encountered error.
func LoadWeapons(dir string) ([]*WeaponDef, error) {
	return content.LoadDir[WeaponDef](dir, "LoadWeapons")
}

// Weapon is a wieldable weapon instance.
type Weapon struct {
	grammar.Noun
	damage         dice.Expression
	verbs          Parts
	critRange      int
	critMultiplier int
}

// NewWeapon builds a Weapon from its definition and verb table.
//
// Precondition: def passes Validate; verbs carries light, medium and heavy phrases.
// Postcondition: Returns a Weapon or the parse error of def.Damage.
func NewWeapon(def *WeaponDef, verbs Parts) (*Weapon, error) {
	expr, err := dice.Parse(def.Damage)
	if err != nil {
		return nil, fmt.Errorf("inventory: weapon %q: %w", def.ID, err)
	}
	return &Weapon{
		Noun:           grammar.NewNoun(def.Name, def.Unique),
		damage:         expr,
		verbs:          verbs,
		critRange:      def.CritRange,
		critMultiplier: def.CritMultiplier,
	}, nil
}

// Damage returns the damage dice expression.
func (w *Weapon) Damage() dice.Expression { return w.damage }

// Verbs returns the attack verb table.
func (w *Weapon) Verbs() Parts { return w.verbs }

// CritRange returns how many points below 20 still crit.
func (w *Weapon) CritRange() int { return w.critRange }

// CritMultiplier returns how many damage rolls are summed on a critical.
func (w *Weapon) CritMultiplier() int { return w.critMultiplier }

// IsCritical reports whether a natural attack roll is a critical.
//
// Postcondition: true iff attackRoll >= 20 - CritRange().
func (w *Weapon) IsCritical(attackRoll int) bool {
	return attackRoll >= 20-w.critRange
}

// RollDamage rolls the damage expression once, or CritMultiplier times on a
// critical, adding strength to every roll.
//
// Precondition: roller must be non-nil.
// Postcondition: Returns the summed damage or a dice error.
func (w *Weapon) RollDamage(attackRoll, strength int, roller *dice.Roller) (int, error) {
	times := 1
	if w.IsCritical(attackRoll) {
		times = w.critMultiplier
	}
	total := 0
	for i := 0; i < times; i++ {
		res, err := roller.Roll(w.damage)
		if err != nil {
			return 0, fmt.Errorf("inventory: rolling %s damage: %w", w.Name(), err)
		}
		total += res.Total() + strength
	}
	return total, nil
}
