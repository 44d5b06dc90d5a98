package model

import "fmt"

// LevelRunState is the mutable per-level-instance state: the pending
// spawn multiset and the total resolved for this instance. Created when
// a level starts (including repeats), replaced when it ends. Owned
// exclusively by the scheduler; not safe for concurrent use.
type LevelRunState struct {
	pending  []EnemyType
	resolved int
}

// NewLevelRunState creates run state from a resolved spawn multiset.
func NewLevelRunState(pending []EnemyType) *LevelRunState {
	owned := make([]EnemyType, len(pending))
	copy(owned, pending)
	return &LevelRunState{
		pending:  owned,
		resolved: len(owned),
	}
}

// ResolvedSpawnCount returns the total chosen for this level instance.
// It does not decrease as spawns are emitted.
func (s *LevelRunState) ResolvedSpawnCount() int {
	return s.resolved
}

// PendingCount returns how many spawns have not been emitted yet.
func (s *LevelRunState) PendingCount() int {
	return len(s.pending)
}

// Pending returns a copy of the pending multiset.
func (s *LevelRunState) Pending() []EnemyType {
	pending := make([]EnemyType, len(s.pending))
	copy(pending, s.pending)
	return pending
}

// TakeAt removes and returns the pending entry at index i.
// The multiset is unordered, so the hole is filled by the last entry.
func (s *LevelRunState) TakeAt(i int) (EnemyType, error) {
	if i < 0 || i >= len(s.pending) {
		return "", fmt.Errorf("pending spawn index %d out of range (pending %d)", i, len(s.pending))
	}
	taken := s.pending[i]
	last := len(s.pending) - 1
	s.pending[i] = s.pending[last]
	s.pending = s.pending[:last]
	return taken, nil
}

// CountOf returns how many pending entries match the given type.
func (s *LevelRunState) CountOf(t EnemyType) int {
	count := 0
	for _, p := range s.pending {
		if p == t {
			count++
		}
	}
	return count
}
