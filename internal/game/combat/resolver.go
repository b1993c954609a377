// Package combat resolves melee exchanges between creatures and records them
// as narration events.
package combat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/laststand/internal/game/creature"
	"github.com/cory-johannsen/laststand/internal/game/dice"
	"github.com/cory-johannsen/laststand/internal/game/event"
	"github.com/cory-johannsen/laststand/internal/game/narrate"
	"github.com/cory-johannsen/laststand/internal/gameerr"
	"github.com/cory-johannsen/laststand/internal/observability"
)

// turnRound is the combat round passed to every attack of every turn.
// Stumble pools are chosen by round, so only opening stumbles are narrated.
// TODO: pass the real combat round once the later-round stumble pool is confirmed intended.
const turnRound = 1

// followUpPause separates the attacks of one turn, in time units.
const followUpPause = 2

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	// Skipped is true when the defender was already dead and nothing was rolled.
	Skipped bool
	// AttackRoll is the raw d20 result.
	AttackRoll int
	// AttackTotal is AttackRoll + bonus + attacker strength.
	AttackTotal int
	// ArmorClass is the defender's armor class at the time of the attack.
	ArmorClass int
	Hit        bool
	Critical   bool
	// Damage is the damage rolled on a hit, before clamping to the defender's HP.
	Damage int
}

// MeleeAttack resolves weapon attacks and narrates them.
type MeleeAttack struct {
	narrator *narrate.Narrator
	roller   *dice.Roller
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewMeleeAttack creates a MeleeAttack. metrics may be nil.
//
// Precondition: narrator, roller and logger must be non-nil.
func NewMeleeAttack(narrator *narrate.Narrator, roller *dice.Roller, logger *zap.Logger, metrics *observability.Metrics) *MeleeAttack {
	return &MeleeAttack{narrator: narrator, roller: roller, logger: logger, metrics: metrics}
}

// OneAttack resolves a single attack with the given attack bonus.
// Nothing is rolled or narrated when the defender is already dead.
// The attack hits when d20 + bonus + attacker strength >= defender armor class.
//
// Precondition: attacker is armed.
// Postcondition: On a hit the defender loses the rolled damage (clamped at 0)
// after the hit is narrated; on a miss no state changes.
func (m *MeleeAttack) OneAttack(ctx context.Context, attacker, defender *creature.Creature, bonus, round int) (AttackResult, error) {
	if defender.HP() == 0 {
		return AttackResult{Skipped: true}, nil
	}
	weapon := attacker.Weapon()
	if weapon == nil {
		return AttackResult{}, gameerr.New(gameerr.CodeInvariant,
			fmt.Sprintf("combat: %s attacks without a weapon", attacker.Name()))
	}

	roll := m.roller.D20()
	r := AttackResult{
		AttackRoll:  roll,
		AttackTotal: roll + bonus + attacker.Str(),
		ArmorClass:  defender.ArmorClass(),
	}
	r.Hit = r.AttackTotal >= r.ArmorClass

	if r.Hit {
		r.Critical = weapon.IsCritical(roll)
		damage, err := weapon.RollDamage(roll, attacker.Str(), m.roller)
		if err != nil {
			return r, err
		}
		r.Damage = damage
		if err := m.narrator.Hit(ctx, attacker, defender, damage, roll, round); err != nil {
			return r, err
		}
		if err := defender.TakeDamage(damage); err != nil {
			return r, err
		}
		m.metrics.RecordHit(ctx, damage, r.Critical)
	} else {
		if err := m.narrator.Miss(attacker, defender); err != nil {
			return r, err
		}
		m.metrics.RecordMiss(ctx)
	}

	m.logger.Debug("attack resolved",
		zap.String("attacker", attacker.Name()),
		zap.String("defender", defender.Name()),
		zap.Int("roll", r.AttackRoll),
		zap.Int("total", r.AttackTotal),
		zap.Int("armor_class", r.ArmorClass),
		zap.Bool("hit", r.Hit),
		zap.Bool("critical", r.Critical),
		zap.Int("damage", r.Damage),
		zap.Int("defender_hp", defender.HP()),
	)
	return r, nil
}

// ExecuteTurn makes every attack the attacker's level grants, in ladder
// order, with a pause before each follow-up attack.
//
// Postcondition: Returns one AttackResult per ladder entry.
func (m *MeleeAttack) ExecuteTurn(ctx context.Context, attacker, defender *creature.Creature) ([]AttackResult, error) {
	bonuses := attacker.AttackBonuses()
	results := make([]AttackResult, 0, len(bonuses))
	for i, bonus := range bonuses {
		if i > 0 {
			m.narrator.Stream().Emit(event.Pause(followUpPause))
		}
		r, err := m.OneAttack(ctx, attacker, defender, bonus, turnRound)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
