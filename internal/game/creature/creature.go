// Package creature provides the combatant model: ability scores, derived
// combat statistics, equipment slots, and the content that drives narration
// of blows against a creature.
package creature

import (
	"fmt"

	"github.com/cory-johannsen/laststand/internal/game/grammar"
	"github.com/cory-johannsen/laststand/internal/game/inventory"
	"github.com/cory-johannsen/laststand/internal/gameerr"
)

// Spec carries everything needed to build a Creature.
type Spec struct {
	Name     string
	Unique   bool
	Gender   grammar.Gender
	Level    int
	Str      int
	Dex      int
	Con      int
	BaseHP   int
	Anatomy  inventory.Parts
	Stumbles Stumbles
}

// Creature is a live combatant.
//
// Invariant: 0 <= HP() <= MaxHP().
type Creature struct {
	grammar.Noun

	// ID uniquely identifies this runtime instance.
	ID string

	gender   grammar.Gender
	level    int
	str      int
	dex      int
	con      int
	baseHP   int
	hp       int
	anatomy  inventory.Parts
	stumbles Stumbles
	weapon   *inventory.Weapon
	armor    *inventory.Armor
}

// New builds a Creature at full health with nothing equipped.
//
// Precondition: spec.Level is in [MinLevel, MaxLevel].
// Postcondition: HP() == MaxHP(); returns an InvalidArgument error for a
// level outside the ladder or a max HP below 1.
func New(id string, spec Spec) (*Creature, error) {
	if spec.Level < MinLevel || spec.Level > MaxLevel {
		return nil, gameerr.New(gameerr.CodeInvalidArgument,
			fmt.Sprintf("creature %q: level %d outside [%d, %d]", spec.Name, spec.Level, MinLevel, MaxLevel))
	}
	c := &Creature{
		Noun:     grammar.NewNoun(spec.Name, spec.Unique),
		ID:       id,
		gender:   spec.Gender,
		level:    spec.Level,
		str:      spec.Str,
		dex:      spec.Dex,
		con:      spec.Con,
		baseHP:   spec.BaseHP,
		anatomy:  spec.Anatomy,
		stumbles: spec.Stumbles,
	}
	if c.MaxHP() < 1 {
		return nil, gameerr.New(gameerr.CodeInvalidArgument,
			fmt.Sprintf("creature %q: max hp %d must be >= 1", spec.Name, c.MaxHP()))
	}
	c.hp = c.MaxHP()
	return c, nil
}

func (c *Creature) Gender() grammar.Gender { return c.gender }
func (c *Creature) Level() int             { return c.level }
func (c *Creature) Str() int               { return c.str }
func (c *Creature) Dex() int               { return c.dex }
func (c *Creature) Con() int               { return c.con }
func (c *Creature) HP() int                { return c.hp }

// Anatomy returns the body-part table used to narrate blows against c.
func (c *Creature) Anatomy() inventory.Parts { return c.anatomy }

// Stumbles returns the flourish pools used when c lands a devastating blow.
func (c *Creature) Stumbles() Stumbles { return c.stumbles }

// MaxHP returns baseHP + con*level.
func (c *Creature) MaxHP() int { return MaxHP(c.baseHP, c.con, c.level) }

// ArmorClass returns 10 + armor bonus + dex.
func (c *Creature) ArmorClass() int {
	ac := 10 + c.dex
	if c.armor != nil {
		ac += c.armor.Bonus()
	}
	return ac
}

// AttackBonuses returns the bonus of every attack c makes in one turn.
func (c *Creature) AttackBonuses() []int {
	// level is checked by New, so the lookup cannot fail.
	bonuses, _ := AttackBonuses(c.level)
	return bonuses
}

// TakeDamage lowers HP by amount, stopping at 0.
//
// Precondition: amount >= 0.
// Postcondition: HP() == max(0, old HP - amount); a negative amount is an
// InvalidArgument error and leaves HP unchanged.
func (c *Creature) TakeDamage(amount int) error {
	if amount < 0 {
		return gameerr.New(gameerr.CodeInvalidArgument,
			fmt.Sprintf("creature %q: negative damage %d", c.Name(), amount))
	}
	c.hp = max(0, c.hp-amount)
	return nil
}

// Heal restores HP to MaxHP.
func (c *Creature) Heal() { c.hp = c.MaxHP() }

// IsDead reports whether HP has reached 0.
func (c *Creature) IsDead() bool { return c.hp == 0 }

// Weapon returns the wielded weapon, or nil when unarmed.
func (c *Creature) Weapon() *inventory.Weapon { return c.weapon }

// Armor returns the worn armor, or nil.
func (c *Creature) Armor() *inventory.Armor { return c.armor }

// EquipWeapon puts w in the weapon slot and returns the weapon it replaced.
// A nil w unequips.
func (c *Creature) EquipWeapon(w *inventory.Weapon) *inventory.Weapon {
	prev := c.weapon
	c.weapon = w
	return prev
}

// EquipArmor puts a in the armor slot and returns the armor it replaced.
// A nil a unequips.
func (c *Creature) EquipArmor(a *inventory.Armor) *inventory.Armor {
	prev := c.armor
	c.armor = a
	return prev
}
