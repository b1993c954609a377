// Package main runs the gauntlet simulation and plays its narration on the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/cory-johannsen/laststand/internal/config"
	"github.com/cory-johannsen/laststand/internal/frontend/console"
	"github.com/cory-johannsen/laststand/internal/game/combat"
	"github.com/cory-johannsen/laststand/internal/game/creature"
	"github.com/cory-johannsen/laststand/internal/game/dice"
	"github.com/cory-johannsen/laststand/internal/game/event"
	"github.com/cory-johannsen/laststand/internal/game/grammar"
	"github.com/cory-johannsen/laststand/internal/game/narrate"
	"github.com/cory-johannsen/laststand/internal/observability"
	"github.com/cory-johannsen/laststand/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	seedFlag := flag.Int64("seed", 0, "override simulation.seed; 0 keeps the configured value")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	seed := cfg.Simulation.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			logger.Fatal("drawing seed", zap.Error(err))
		}
	}
	logger.Info("starting simulation",
		zap.Int64("seed", seed),
		zap.String("hero", cfg.Simulation.Hero),
		zap.String("challenger", cfg.Simulation.Challenger),
	)

	contentStart := time.Now()
	catalog, err := creature.LoadCatalog(cfg.Simulation.ContentDir)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Strings("templates", catalog.TemplateIDs()),
		zap.Strings("weapons", catalog.Equipment.WeaponIDs()),
		zap.Duration("elapsed", time.Since(contentStart)),
	)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewMetrics(mp)
	if err != nil {
		logger.Fatal("creating metrics", zap.Error(err))
	}

	src := dice.NewSeededSource(seed)
	roller := dice.NewLoggedRoller(src, logger)
	stream := event.NewStream()
	narrator := narrate.New(grammar.NewView(nil), stream, roller, logger, metrics)
	attack := combat.NewMeleeAttack(narrator, roller, logger, metrics)
	fight := combat.NewFight(attack, stream, logger, metrics, cfg.Simulation.MaxRounds)
	spawner := creature.NewSpawner(catalog, src, logger)
	gauntlet := combat.NewGauntlet(spawner, fight, stream, logger,
		cfg.Simulation.Hero, cfg.Simulation.Challenger, cfg.Simulation.MaxEncounters)

	ctx := context.Background()
	simStart := time.Now()
	tally, err := gauntlet.Run(ctx)
	if err != nil {
		logger.Fatal("simulation aborted", zap.Error(err))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		logger.Warn("collecting metrics", zap.Error(err))
	}
	fields := []zap.Field{
		zap.Int("kills", tally.Kills),
		zap.Int("encounters", tally.Encounters),
		zap.Bool("hero_died", tally.HeroDied),
		zap.Int("events", stream.Len()),
		zap.Int("pause_units", stream.TotalPause()),
		zap.Duration("elapsed", time.Since(simStart)),
	}
	for name, total := range observability.Totals(rm) {
		fields = append(fields, zap.Int64(name, total))
	}
	logger.Info("simulation complete", fields...)
	if err := mp.Shutdown(ctx); err != nil {
		logger.Warn("shutting down meter provider", zap.Error(err))
	}

	presenter := console.NewPresenter(os.Stdout, console.Options{
		PauseUnit: cfg.Presentation.PauseUnit,
		Height:    cfg.Presentation.Height,
		Color:     cfg.Presentation.Color,
	}, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("presenter", console.NewService(presenter, stream.Events()))

	logger.Info("startup complete", zap.Duration("elapsed", time.Since(start)))
	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("presentation error", zap.Error(err))
	}
}
