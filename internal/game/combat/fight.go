package combat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/laststand/internal/game/creature"
	"github.com/cory-johannsen/laststand/internal/game/event"
	"github.com/cory-johannsen/laststand/internal/gameerr"
	"github.com/cory-johannsen/laststand/internal/observability"
)

const (
	openingPause = 2
	turnPause    = 3
)

// Fight runs two creatures against each other until one dies.
type Fight struct {
	attack    *MeleeAttack
	stream    *event.Stream
	logger    *zap.Logger
	metrics   *observability.Metrics
	maxRounds int
}

// NewFight creates a Fight. maxRounds caps a fight as a stalemate guard;
// 0 means unlimited. metrics may be nil.
//
// Precondition: attack, stream and logger must be non-nil; maxRounds >= 0.
func NewFight(attack *MeleeAttack, stream *event.Stream, logger *zap.Logger, metrics *observability.Metrics, maxRounds int) *Fight {
	return &Fight{attack: attack, stream: stream, logger: logger, metrics: metrics, maxRounds: maxRounds}
}

// Run fights p1 against p2 and returns the winner.
//
// The creature with the higher dexterity acts first every round; on a tie
// p2 acts first. Each round emits a status line, then each living creature
// takes its turn. A defender reaching 0 HP ends the fight with a death line;
// otherwise a pause follows each turn.
//
// Precondition: both creatures are alive and armed.
// Postcondition: Returns the surviving creature, or an InvariantViolation if
// maxRounds elapse without a death.
func (f *Fight) Run(ctx context.Context, p1, p2 *creature.Creature) (*creature.Creature, error) {
	order := [2][2]*creature.Creature{{p1, p2}, {p2, p1}}
	if p2.Dex() >= p1.Dex() {
		order[0], order[1] = order[1], order[0]
	}

	f.logger.Info("fight begins",
		zap.String("p1", p1.Name()),
		zap.String("p2", p2.Name()),
		zap.String("first", order[0][0].Name()),
	)
	f.stream.Emit(event.Begin(p1, p2))
	f.stream.Emit(event.Pause(openingPause))

	for round := 1; ; round++ {
		if f.maxRounds > 0 && round > f.maxRounds {
			return nil, gameerr.New(gameerr.CodeInvariant,
				fmt.Sprintf("combat: %s and %s still standing after %d rounds", p1.Name(), p2.Name(), f.maxRounds))
		}
		f.stream.Emit(event.Status(p1, p2))
		for _, pair := range order {
			attacker, defender := pair[0], pair[1]
			if !attacker.IsDead() {
				if _, err := f.attack.ExecuteTurn(ctx, attacker, defender); err != nil {
					return nil, err
				}
			}
			if defender.IsDead() {
				f.stream.Emit(event.Death(defender))
				f.metrics.RecordFight(ctx, attacker.Name())
				f.logger.Info("fight ends",
					zap.String("winner", attacker.Name()),
					zap.String("loser", defender.Name()),
					zap.Int("rounds", round),
					zap.Int("winner_hp", attacker.HP()),
				)
				return attacker, nil
			}
			f.stream.Emit(event.Pause(turnPause))
		}
	}
}
