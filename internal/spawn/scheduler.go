package spawn

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/udisondev/arenawave/internal/model"
)

// EnemyRegistry receives spawn events and tracks the live population.
type EnemyRegistry interface {
	SpawnEnemy(t model.EnemyType)
	LiveEnemyCount() int
}

// PlayerState exposes whether the player is alive. The scheduler
// freezes completely while the player is dead.
type PlayerState interface {
	IsPlayerDead() bool
}

// Scheduler owns level progression for one arena session: the ordered
// level list, the active level's run state and clock, and the spawn
// sequencer. Drive it with one Tick per simulation frame.
//
// Single-threaded by design — all state is mutated only inside Tick,
// and the instance must stay confined to one goroutine.
type Scheduler struct {
	levels   []model.LevelDefinition
	registry EnemyRegistry
	player   PlayerState
	rng      *rand.Rand

	sequencer      *Sequencer
	clock          *Clock
	wrapPolicy     WrapPolicy
	intervalPolicy IntervalPolicy

	levelIndex int
	state      *model.LevelRunState
	stopped    bool

	totalSpawned    int
	levelsCompleted int
}

// NewScheduler creates a scheduler over the given level list and
// resolves the first level immediately, before any ticks. The level
// list must be non-empty and every level valid; collaborators are
// injected, never discovered.
func NewScheduler(
	levels []model.LevelDefinition,
	registry EnemyRegistry,
	player PlayerState,
	rng *rand.Rand,
) (*Scheduler, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("scheduler needs at least one level")
	}
	if registry == nil {
		return nil, fmt.Errorf("scheduler needs an enemy registry")
	}
	if player == nil {
		return nil, fmt.Errorf("scheduler needs a player state provider")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	for i, def := range levels {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}

	s := &Scheduler{
		levels:         levels,
		registry:       registry,
		player:         player,
		rng:            rng,
		sequencer:      NewSequencer(registry, rng),
		clock:          NewClock(),
		wrapPolicy:     WrapRepeatLast,
		intervalPolicy: ConstantInterval,
	}

	if err := s.startLevel(0); err != nil {
		return nil, err
	}

	return s, nil
}

// SetWrapPolicy selects the end-of-list behavior.
func (s *Scheduler) SetWrapPolicy(p WrapPolicy) {
	s.wrapPolicy = p
}

// SetIntervalPolicy selects how the inter-spawn interval is computed.
func (s *Scheduler) SetIntervalPolicy(p IntervalPolicy) {
	s.intervalPolicy = p
}

// LevelIndex returns the active level index.
func (s *Scheduler) LevelIndex() int {
	return s.levelIndex
}

// RunState returns the active level's run state.
func (s *Scheduler) RunState() *model.LevelRunState {
	return s.state
}

// Clock returns the active level clock.
func (s *Scheduler) Clock() *Clock {
	return s.clock
}

// Stopped reports whether the level list is exhausted under WrapStop.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// TotalSpawned returns how many enemies have been emitted this session.
func (s *Scheduler) TotalSpawned() int {
	return s.totalSpawned
}

// LevelsCompleted returns how many level instances have ended.
func (s *Scheduler) LevelsCompleted() int {
	return s.levelsCompleted
}

// Tick advances the simulation by dt: accrues time, emits a spawn if
// one is due, and transitions levels when the active one ends. No time
// accrues and nothing spawns while the player is dead or after the
// scheduler stopped.
func (s *Scheduler) Tick(dt time.Duration) error {
	if s.stopped || s.player.IsPlayerDead() {
		return nil
	}

	s.clock.Advance(dt)

	def := s.levels[s.levelIndex]

	if s.state.PendingCount() > 0 && s.clock.SpawnDue(def, s.state, s.intervalPolicy) {
		emitted, err := s.sequencer.EmitOne(s.state)
		if err != nil {
			return fmt.Errorf("level %d: %w", s.levelIndex, err)
		}
		s.clock.ResetSpawn()
		s.totalSpawned++
		slog.Debug("enemy spawned",
			"type", emitted,
			"level", s.levelIndex,
			"pending", s.state.PendingCount(),
			"elapsed", s.clock.ElapsedInLevel())
	}

	if s.clock.LevelEnded(def, s.registry.LiveEnemyCount()) {
		if err := s.advanceLevel(); err != nil {
			return err
		}
	}

	return nil
}

// advanceLevel moves to the next level per the wrap policy and resolves
// its run state.
func (s *Scheduler) advanceLevel() error {
	s.levelsCompleted++

	next := s.levelIndex + 1
	if next >= len(s.levels) {
		switch s.wrapPolicy {
		case WrapRepeatLast:
			next = len(s.levels) - 1
		case WrapLoopFromStart:
			next = 0
		case WrapStop:
			s.stopped = true
			slog.Info("level list exhausted, scheduler stopped",
				"levels_completed", s.levelsCompleted,
				"total_spawned", s.totalSpawned)
			return nil
		}
	}

	return s.startLevel(next)
}

// startLevel resolves run state for the given index and resets clocks.
func (s *Scheduler) startLevel(index int) error {
	state, err := Resolve(s.levels[index], s.rng)
	if err != nil {
		return fmt.Errorf("starting level %d: %w", index, err)
	}

	s.levelIndex = index
	s.state = state
	s.clock.ResetLevel()

	slog.Info("level started",
		"level", index,
		"resolved_spawns", state.ResolvedSpawnCount(),
		"spawn_window", s.levels[index].SpawnWindow(),
		"time_limit", s.levels[index].TimeLimit())

	return nil
}
