package combat

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/laststand/internal/game/creature"
	"github.com/cory-johannsen/laststand/internal/game/event"
)

// boutPause follows every fight of a gauntlet, in time units.
const boutPause = 3

// Tally summarizes a finished gauntlet.
type Tally struct {
	// Kills counts challengers the hero defeated.
	Kills int
	// Encounters counts fights started, including a fatal one.
	Encounters int
	// HeroDied is false when the gauntlet stopped at its encounter cap.
	HeroDied bool
}

// Gauntlet pits one hero against an endless line of freshly spawned challengers.
type Gauntlet struct {
	spawner       *creature.Spawner
	fight         *Fight
	stream        *event.Stream
	logger        *zap.Logger
	hero          string
	challenger    string
	maxEncounters int
}

// NewGauntlet creates a Gauntlet for the given hero and challenger template IDs.
// maxEncounters of 0 runs until the hero dies.
//
// Precondition: spawner, fight, stream and logger must be non-nil.
func NewGauntlet(spawner *creature.Spawner, fight *Fight, stream *event.Stream, logger *zap.Logger, hero, challenger string, maxEncounters int) *Gauntlet {
	return &Gauntlet{
		spawner:       spawner,
		fight:         fight,
		stream:        stream,
		logger:        logger,
		hero:          hero,
		challenger:    challenger,
		maxEncounters: maxEncounters,
	}
}

// Run spawns the hero and fights challengers one at a time. The hero's
// wounds carry over between bouts. When the hero falls a conclusion line
// reports the number of kills.
//
// Postcondition: Returns the Tally, or the first spawn or combat error.
// Cancelling ctx stops the gauntlet between bouts with ctx.Err().
func (g *Gauntlet) Run(ctx context.Context) (Tally, error) {
	var tally Tally
	hero, err := g.spawner.Spawn(g.hero)
	if err != nil {
		return tally, err
	}

	for !hero.IsDead() {
		if g.maxEncounters > 0 && tally.Encounters >= g.maxEncounters {
			g.logger.Info("gauntlet stopped at encounter cap",
				zap.Int("encounters", tally.Encounters),
				zap.Int("hero_hp", hero.HP()),
			)
			return tally, nil
		}
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		challenger, err := g.spawner.Spawn(g.challenger)
		if err != nil {
			return tally, err
		}
		tally.Encounters++
		g.logger.Info("challenger approaches",
			zap.Int("encounter", tally.Encounters),
			zap.String("id", challenger.ID),
			zap.String("weapon", challenger.Weapon().Name()),
		)

		g.stream.Emit(event.Intro(challenger, challenger.Weapon()))
		winner, err := g.fight.Run(ctx, challenger, hero)
		if err != nil {
			return tally, err
		}
		g.stream.Emit(event.Pause(boutPause))

		if winner == hero {
			tally.Kills++
			continue
		}
		tally.HeroDied = true
		g.stream.Emit(event.Conclusion(tally.Kills, challenger, hero))
	}

	g.logger.Info("gauntlet over",
		zap.Int("kills", tally.Kills),
		zap.Int("encounters", tally.Encounters),
	)
	return tally, nil
}
