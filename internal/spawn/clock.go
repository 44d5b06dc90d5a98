package spawn

import (
	"time"

	"github.com/udisondev/arenawave/internal/model"
)

// spawnGracePeriod extends spawning slightly past the nominal window so
// a spawn landing exactly on the window edge is not lost.
const spawnGracePeriod = time.Second

// Clock tracks elapsed time within the current level and since the last
// spawn. Both accumulate only while the player is alive; the scheduler
// simply does not advance the clock on dead ticks.
type Clock struct {
	elapsedInLevel time.Duration
	sinceLastSpawn time.Duration
}

// NewClock creates a zeroed level clock.
func NewClock() *Clock {
	return &Clock{}
}

// Advance accrues dt on both counters.
func (c *Clock) Advance(dt time.Duration) {
	c.elapsedInLevel += dt
	c.sinceLastSpawn += dt
}

// ElapsedInLevel returns time accrued since the level started.
func (c *Clock) ElapsedInLevel() time.Duration {
	return c.elapsedInLevel
}

// SinceLastSpawn returns time accrued since the last spawn emission.
func (c *Clock) SinceLastSpawn() time.Duration {
	return c.sinceLastSpawn
}

// ResetLevel zeroes both counters for a new level instance.
func (c *Clock) ResetLevel() {
	c.elapsedInLevel = 0
	c.sinceLastSpawn = 0
}

// ResetSpawn zeroes the since-last-spawn counter after an emission.
func (c *Clock) ResetSpawn() {
	c.sinceLastSpawn = 0
}

// SpawnDue reports whether the next spawn should be emitted: the
// inter-spawn interval chosen by the policy has elapsed and the level
// is still inside the spawn window plus grace. Levels that resolved to
// zero spawns are never due, which also keeps the interval division
// away from a zero denominator.
func (c *Clock) SpawnDue(def model.LevelDefinition, state *model.LevelRunState, policy IntervalPolicy) bool {
	if state.ResolvedSpawnCount() < 1 {
		return false
	}
	interval := policy(def.SpawnWindow(), state.ResolvedSpawnCount(), state.PendingCount())
	if interval <= 0 {
		return false
	}
	return c.sinceLastSpawn >= interval && c.elapsedInLevel < def.SpawnWindow()+spawnGracePeriod
}

// LevelEnded reports whether the current level is over: the time limit
// is reached, or every spawned enemy is dead after the spawn window has
// passed. The window condition stops a level from ending before
// spawning has even started.
func (c *Clock) LevelEnded(def model.LevelDefinition, liveEnemies int) bool {
	if c.elapsedInLevel >= def.TimeLimit() {
		return true
	}
	return liveEnemies < 1 && c.elapsedInLevel > def.SpawnWindow()
}
