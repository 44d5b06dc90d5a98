package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arenawave/internal/model"
)

// Simulation holds all configuration for the arenawave simulator: the
// ordered level list plus driver settings. Loaded once at startup,
// immutable thereafter.
type Simulation struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Driver
	TickMillis   int    `yaml:"tick_millis"`   // fixed timestep per tick
	MaxTicks     int    `yaml:"max_ticks"`     // 0 = run until scheduler stops
	Seed         uint64 `yaml:"seed"`          // 0 = random seed
	KillInterval int    `yaml:"kill_interval"` // simulated kill every N ticks, 0 = never
	WrapPolicy   string `yaml:"wrap_policy"`   // repeat_last, loop_from_start, stop
	IntervalMode string `yaml:"interval_mode"` // constant, remaining

	Levels []LevelEntry `yaml:"levels"`
}

// LevelEntry is the file form of one level definition.
type LevelEntry struct {
	Rules            []RuleEntry `yaml:"rules"`
	SpawnWindowMs    int         `yaml:"spawn_window_ms"`
	TimeLimitMs      int         `yaml:"time_limit_ms"`
	TargetSpawnCount int         `yaml:"target_spawn_count"` // -1 = random within quota range
}

// RuleEntry is the file form of one spawn rule.
type RuleEntry struct {
	Type string `yaml:"type"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

// DefaultSimulation returns a Simulation config with sensible defaults:
// two short levels, 100ms ticks, automatic kills so levels can end early.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:     "info",
		TickMillis:   100,
		MaxTicks:     0,
		KillInterval: 20,
		WrapPolicy:   "stop",
		IntervalMode: "constant",
		Levels: []LevelEntry{
			{
				Rules: []RuleEntry{
					{Type: "grunt", Min: 3, Max: 6},
					{Type: "archer", Min: 1, Max: 3},
				},
				SpawnWindowMs:    5000,
				TimeLimitMs:      10000,
				TargetSpawnCount: model.RandomSpawnCount,
			},
			{
				Rules: []RuleEntry{
					{Type: "grunt", Min: 4, Max: 8},
					{Type: "archer", Min: 2, Max: 4},
					{Type: "brute", Min: 1, Max: 1},
				},
				SpawnWindowMs:    8000,
				TimeLimitMs:      15000,
				TargetSpawnCount: model.RandomSpawnCount,
			},
		},
	}
}

// LoadSimulation loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg = Simulation{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// applyDefaults fills zero-valued driver fields from defaults so a
// config file can list only levels.
func applyDefaults(cfg *Simulation) {
	def := DefaultSimulation()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.TickMillis == 0 {
		cfg.TickMillis = def.TickMillis
	}
	if cfg.WrapPolicy == "" {
		cfg.WrapPolicy = def.WrapPolicy
	}
	if cfg.IntervalMode == "" {
		cfg.IntervalMode = def.IntervalMode
	}
}

// Validate checks driver settings and every level entry. Configuration
// errors are fatal before the simulation starts.
func (c Simulation) Validate() error {
	if c.TickMillis <= 0 {
		return fmt.Errorf("tick_millis %d is not positive", c.TickMillis)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks %d is negative", c.MaxTicks)
	}
	if c.KillInterval < 0 {
		return fmt.Errorf("kill_interval %d is negative", c.KillInterval)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("no levels configured")
	}

	if _, err := c.LevelDefinitions(); err != nil {
		return err
	}
	return nil
}

// LevelDefinitions converts the file entries into validated model
// definitions.
func (c Simulation) LevelDefinitions() ([]model.LevelDefinition, error) {
	defs := make([]model.LevelDefinition, 0, len(c.Levels))
	for i, entry := range c.Levels {
		rules := make([]model.SpawnRule, 0, len(entry.Rules))
		for _, r := range entry.Rules {
			rules = append(rules, model.NewSpawnRule(model.EnemyType(r.Type), r.Min, r.Max))
		}
		def := model.NewLevelDefinition(
			rules,
			time.Duration(entry.SpawnWindowMs)*time.Millisecond,
			time.Duration(entry.TimeLimitMs)*time.Millisecond,
			entry.TargetSpawnCount,
		)
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// TickDuration returns the fixed timestep as a duration.
func (c Simulation) TickDuration() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}
