package world

import (
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/arenawave/internal/model"
)

// Arena is an in-memory enemy registry: it assigns object IDs to
// spawned enemies and tracks the live population. It implements the
// scheduler's EnemyRegistry interface and stands in for whatever actor
// system a host engine provides.
type Arena struct {
	enemies map[uint32]model.EnemyType // objectID → type, live enemies only

	objectIDCounter atomic.Uint32
	totalSpawned    int
	totalKilled     int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	a := &Arena{
		enemies: make(map[uint32]model.EnemyType),
	}
	// Enemy IDs start high so host-side actors can use lower ranges.
	a.objectIDCounter.Store(100000)
	return a
}

// SpawnEnemy registers one live enemy of the given type.
func (a *Arena) SpawnEnemy(t model.EnemyType) {
	objectID := a.objectIDCounter.Add(1)
	a.enemies[objectID] = t
	a.totalSpawned++
	slog.Debug("enemy registered", "objectID", objectID, "type", t, "live", len(a.enemies))
}

// LiveEnemyCount returns how many spawned enemies are still alive.
func (a *Arena) LiveEnemyCount() int {
	return len(a.enemies)
}

// KillOne removes one live enemy of the given type.
// Returns false if none of that type is alive.
func (a *Arena) KillOne(t model.EnemyType) bool {
	for objectID, et := range a.enemies {
		if et == t {
			delete(a.enemies, objectID)
			a.totalKilled++
			slog.Debug("enemy killed", "objectID", objectID, "type", t, "live", len(a.enemies))
			return true
		}
	}
	return false
}

// KillAll removes every live enemy and returns how many died.
func (a *Arena) KillAll() int {
	killed := len(a.enemies)
	clear(a.enemies)
	a.totalKilled += killed
	if killed > 0 {
		slog.Debug("arena cleared", "killed", killed)
	}
	return killed
}

// LiveCountOf returns how many live enemies match the given type.
func (a *Arena) LiveCountOf(t model.EnemyType) int {
	count := 0
	for _, et := range a.enemies {
		if et == t {
			count++
		}
	}
	return count
}

// TotalSpawned returns how many enemies have ever been registered.
func (a *Arena) TotalSpawned() int {
	return a.totalSpawned
}

// TotalKilled returns how many enemies have been removed.
func (a *Arena) TotalKilled() int {
	return a.totalKilled
}
