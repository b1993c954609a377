// Package narrate turns resolved blows into prose events.
package narrate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/laststand/internal/game/creature"
	"github.com/cory-johannsen/laststand/internal/game/dice"
	"github.com/cory-johannsen/laststand/internal/game/event"
	"github.com/cory-johannsen/laststand/internal/game/grammar"
	"github.com/cory-johannsen/laststand/internal/game/inventory"
	"github.com/cory-johannsen/laststand/internal/gameerr"
	"github.com/cory-johannsen/laststand/internal/observability"
)

const (
	lightBelow  = 0.15
	mediumBelow = 0.5
	lethalAt    = 1.0
	// stumbleAt is the damage fraction that earns a stumble without a critical.
	stumbleAt = 0.8
)

// stumblePause is the pause after a stumble line, in time units.
const stumblePause = 1

const missTemplate = "%(name)s misses %(o_name)s!"

// Severity is the narration tier chosen for a blow.
type Severity struct {
	// Verbs is the weapon verb tier: light, medium or heavy.
	Verbs inventory.Tier
	// Part is the body-part tier, empty when no body part is named.
	Part inventory.Tier
	// Fraction is damage over the defender's HP before the blow.
	Fraction float64
}

// SeverityFor classifies damage against the defender's HP before the blow.
//
// Precondition: hp > 0.
// Postcondition: fraction < 0.15 is light, < 0.5 medium, otherwise heavy;
// heavy blows name a heavy part, or a fatal part when fraction >= 1.
func SeverityFor(damage, hp int) Severity {
	f := float64(damage) / float64(hp)
	switch {
	case f < lightBelow:
		return Severity{Verbs: inventory.TierLight, Fraction: f}
	case f < mediumBelow:
		return Severity{Verbs: inventory.TierMedium, Fraction: f}
	case f < lethalAt:
		return Severity{Verbs: inventory.TierHeavy, Part: inventory.TierHeavy, Fraction: f}
	default:
		return Severity{Verbs: inventory.TierHeavy, Part: inventory.TierFatal, Fraction: f}
	}
}

// Narrator renders hits and misses into a Stream.
type Narrator struct {
	view    *grammar.View
	stream  *event.Stream
	roller  *dice.Roller
	logger  *zap.Logger
	metrics *observability.Metrics
}

// New creates a Narrator. metrics may be nil.
//
// Precondition: view, stream, roller and logger must be non-nil.
func New(view *grammar.View, stream *event.Stream, roller *dice.Roller, logger *zap.Logger, metrics *observability.Metrics) *Narrator {
	return &Narrator{view: view, stream: stream, roller: roller, logger: logger, metrics: metrics}
}

// Stream returns the stream events are emitted to.
func (n *Narrator) Stream() *event.Stream { return n.stream }

// Hit narrates a landed blow of damage points, before the damage is applied.
// A critical attackRoll or a fraction of at least 0.8 first emits a stumble
// line drawn from the attacker's pool for round, followed by a pause.
//
// Precondition: defender.HP() > 0; attacker is armed.
// Postcondition: Emits [stumble, pause,] hit; returns an InvariantViolation
// for an unarmed attacker or a dead defender, or a TemplateError for bad content.
func (n *Narrator) Hit(ctx context.Context, attacker, defender *creature.Creature, damage, attackRoll, round int) error {
	weapon := attacker.Weapon()
	if weapon == nil {
		return gameerr.New(gameerr.CodeInvariant, fmt.Sprintf("narrate: %s has no weapon", attacker.Name()))
	}
	if defender.HP() == 0 {
		return gameerr.New(gameerr.CodeInvariant, fmt.Sprintf("narrate: %s is already dead", defender.Name()))
	}

	sev := SeverityFor(damage, defender.HP())
	extra := grammar.Dict{"weapon": weapon.Name()}
	if w := defender.Weapon(); w != nil {
		extra[grammar.ObjectPrefix+"weapon"] = w.Name()
	}

	verb, err := n.pick(weapon.Verbs(), sev.Verbs)
	if err != nil {
		return fmt.Errorf("narrate: %s verbs: %w", weapon.Name(), err)
	}
	var part string
	if sev.Part != "" {
		tier := sev.Part
		if tier == inventory.TierFatal && !defender.Anatomy().Has(inventory.TierFatal) {
			tier = inventory.TierHeavy
		}
		if part, err = n.pick(defender.Anatomy(), tier); err != nil {
			return fmt.Errorf("narrate: %s anatomy: %w", defender.Name(), err)
		}
	}

	critical := weapon.IsCritical(attackRoll)
	if critical || sev.Fraction >= stumbleAt {
		line, err := dice.Choice(n.roller.Source(), attacker.Stumbles().ForRound(round))
		if err != nil {
			return fmt.Errorf("narrate: %s stumbles: %w", attacker.Name(), err)
		}
		text, err := n.view.Render(line, attacker, defender, extra)
		if err != nil {
			return err
		}
		n.stream.Emit(event.Text(text))
		n.stream.Emit(event.Pause(stumblePause))
		n.metrics.RecordStumble(ctx)
	}

	template := "%(name)s " + verb + " %(o_name)s"
	if part != "" {
		template = "%(name)s " + verb + " %(o_name_pos)s " + part
	}
	template += fmt.Sprintf(" for %d damage!", damage)
	text, err := n.view.Render(template, attacker, defender, extra)
	if err != nil {
		return err
	}
	n.stream.Emit(event.Text(text))

	n.logger.Debug("hit narrated",
		zap.String("attacker", attacker.Name()),
		zap.String("defender", defender.Name()),
		zap.Int("damage", damage),
		zap.Float64("fraction", sev.Fraction),
		zap.String("verb_tier", string(sev.Verbs)),
		zap.String("part_tier", string(sev.Part)),
		zap.Bool("critical", critical),
	)
	return nil
}

// Miss narrates a missed attack.
func (n *Narrator) Miss(attacker, defender *creature.Creature) error {
	text, err := n.view.Render(missTemplate, attacker, defender, nil)
	if err != nil {
		return err
	}
	n.stream.Emit(event.Text(text))
	return nil
}

func (n *Narrator) pick(parts inventory.Parts, tier inventory.Tier) (string, error) {
	phrase, err := dice.Choice(n.roller.Source(), parts.Phrases(tier))
	if err != nil {
		return "", fmt.Errorf("tier %s: %w", tier, err)
	}
	return phrase, nil
}
