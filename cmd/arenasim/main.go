package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/arenawave/internal/config"
	"github.com/udisondev/arenawave/internal/spawn"
	"github.com/udisondev/arenawave/internal/world"
)

const DefaultConfigPath = "config/levels.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := DefaultConfigPath
	if p := os.Getenv("ARENAWAVE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("arenawave simulator starting",
		"config", cfgPath,
		"levels", len(cfg.Levels),
		"tick", cfg.TickDuration())

	levels, err := cfg.LevelDefinitions()
	if err != nil {
		return fmt.Errorf("building level definitions: %w", err)
	}

	wrapPolicy, err := spawn.ParseWrapPolicy(cfg.WrapPolicy)
	if err != nil {
		return fmt.Errorf("invalid wrap policy: %w", err)
	}
	intervalPolicy, err := spawn.ParseIntervalPolicy(cfg.IntervalMode)
	if err != nil {
		return fmt.Errorf("invalid interval mode: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	slog.Info("rng seeded", "seed", seed)

	arena := world.NewArena()
	player := world.NewPlayer()

	scheduler, err := spawn.NewScheduler(levels, arena, player, rng)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.SetWrapPolicy(wrapPolicy)
	scheduler.SetIntervalPolicy(intervalPolicy)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return simulate(gctx, cfg, scheduler, arena)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}

	slog.Info("simulation finished",
		"total_spawned", scheduler.TotalSpawned(),
		"levels_completed", scheduler.LevelsCompleted(),
		"enemies_killed", arena.TotalKilled())
	return nil
}

// simulate drives the scheduler at a fixed timestep. Every
// kill_interval ticks one live enemy dies, so levels can end early the
// way they would with a fighting player.
func simulate(ctx context.Context, cfg config.Simulation, scheduler *spawn.Scheduler, arena *world.Arena) error {
	ticker := time.NewTicker(cfg.TickDuration())
	defer ticker.Stop()

	dt := cfg.TickDuration()
	tickCount := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			tickCount++

			if err := scheduler.Tick(dt); err != nil {
				return fmt.Errorf("tick %d: %w", tickCount, err)
			}

			if cfg.KillInterval > 0 && tickCount%cfg.KillInterval == 0 {
				arena.KillAll()
			}

			if scheduler.Stopped() {
				slog.Info("scheduler stopped", "ticks", tickCount)
				return nil
			}
			if cfg.MaxTicks > 0 && tickCount >= cfg.MaxTicks {
				slog.Info("tick budget exhausted", "ticks", tickCount)
				return nil
			}
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
