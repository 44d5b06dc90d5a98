package model

import (
	"fmt"
	"time"
)

// RandomSpawnCount is the sentinel target requesting a random total
// in [sumMin, sumMax] instead of an explicit value.
const RandomSpawnCount = -1

// LevelDefinition describes one wave: its per-type quotas, the window
// over which spawns are distributed, and the hard time limit.
// Immutable after configuration load; shared read-only by the scheduler.
type LevelDefinition struct {
	rules            []SpawnRule
	spawnWindow      time.Duration
	timeLimit        time.Duration
	targetSpawnCount int
}

// NewLevelDefinition creates a level definition.
// targetSpawnCount may be RandomSpawnCount (-1) to pick the total
// randomly within the quota range.
func NewLevelDefinition(
	rules []SpawnRule,
	spawnWindow time.Duration,
	timeLimit time.Duration,
	targetSpawnCount int,
) LevelDefinition {
	owned := make([]SpawnRule, len(rules))
	copy(owned, rules)
	return LevelDefinition{
		rules:            owned,
		spawnWindow:      spawnWindow,
		timeLimit:        timeLimit,
		targetSpawnCount: targetSpawnCount,
	}
}

// Rules returns a copy of the level's spawn rules.
func (d LevelDefinition) Rules() []SpawnRule {
	rules := make([]SpawnRule, len(d.rules))
	copy(rules, d.rules)
	return rules
}

// RuleCount returns the number of spawn rules.
func (d LevelDefinition) RuleCount() int {
	return len(d.rules)
}

// Rule returns the rule at index i.
func (d LevelDefinition) Rule(i int) SpawnRule {
	return d.rules[i]
}

// SpawnWindow returns the time span during which spawns are distributed.
func (d LevelDefinition) SpawnWindow() time.Duration {
	return d.spawnWindow
}

// TimeLimit returns the hard cap on level duration.
func (d LevelDefinition) TimeLimit() time.Duration {
	return d.timeLimit
}

// TargetSpawnCount returns the requested total, or RandomSpawnCount.
func (d LevelDefinition) TargetSpawnCount() int {
	return d.targetSpawnCount
}

// SumMin returns the sum of all rule minimums.
func (d LevelDefinition) SumMin() int {
	sum := 0
	for _, r := range d.rules {
		sum += r.minCount
	}
	return sum
}

// SumMax returns the sum of all rule maximums.
func (d LevelDefinition) SumMax() int {
	sum := 0
	for _, r := range d.rules {
		sum += r.maxCount
	}
	return sum
}

// Validate checks the level for configuration errors: bad rules,
// non-positive durations, a quota range that can never spawn, or a
// target outside the accepted encoding.
func (d LevelDefinition) Validate() error {
	if len(d.rules) == 0 {
		return fmt.Errorf("level has no spawn rules")
	}
	for i, r := range d.rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	if d.spawnWindow <= 0 {
		return fmt.Errorf("spawn window %v is not positive", d.spawnWindow)
	}
	if d.timeLimit <= 0 {
		return fmt.Errorf("time limit %v is not positive", d.timeLimit)
	}
	if d.targetSpawnCount < RandomSpawnCount {
		return fmt.Errorf("target spawn count %d is below %d", d.targetSpawnCount, RandomSpawnCount)
	}
	if d.SumMax() < 1 {
		return fmt.Errorf("level can never spawn anything (sum of maxCount is %d)", d.SumMax())
	}
	if d.targetSpawnCount == 0 && d.SumMin() == 0 {
		return fmt.Errorf("target spawn count 0 resolves to a level with no spawns")
	}
	return nil
}
