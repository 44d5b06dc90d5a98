package spawn

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/arenawave/internal/model"
)

// ErrNoPendingSpawns reports a draw attempted against an empty pending
// multiset. The scheduler gates emission on pending count, so hitting
// this error means resolved-count bookkeeping has desynchronized and
// the run must stop rather than silently skip.
var ErrNoPendingSpawns = errors.New("no pending spawns to draw")

// Sequencer draws spawns without replacement from the active level's
// pending multiset and forwards them to the Enemy Registry.
type Sequencer struct {
	registry EnemyRegistry
	rng      *rand.Rand
}

// NewSequencer creates a sequencer emitting into the given registry.
func NewSequencer(registry EnemyRegistry, rng *rand.Rand) *Sequencer {
	return &Sequencer{
		registry: registry,
		rng:      rng,
	}
}

// DrawOne removes one uniformly-random entry from the pending multiset
// and returns it without emitting.
func (s *Sequencer) DrawOne(state *model.LevelRunState) (model.EnemyType, error) {
	if state.PendingCount() == 0 {
		return "", ErrNoPendingSpawns
	}
	taken, err := state.TakeAt(s.rng.IntN(state.PendingCount()))
	if err != nil {
		return "", fmt.Errorf("drawing pending spawn: %w", err)
	}
	return taken, nil
}

// EmitOne draws one entry and hands it to the Enemy Registry.
func (s *Sequencer) EmitOne(state *model.LevelRunState) (model.EnemyType, error) {
	taken, err := s.DrawOne(state)
	if err != nil {
		return "", err
	}
	s.registry.SpawnEnemy(taken)
	return taken, nil
}
