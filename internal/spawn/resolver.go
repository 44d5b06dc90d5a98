package spawn

import (
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/arenawave/internal/model"
)

// extraSlot tracks one rule's remaining capacity beyond its minimum.
// Index-based so the pool never keys on rule identity.
type extraSlot struct {
	ruleIndex int
	remaining int
}

// Resolve converts a level definition into concrete run state: the
// pending spawn multiset and its resolved total.
//
// Every rule contributes exactly minCount guaranteed entries. The
// remainder up to the target is distributed one unit at a time across
// rules that still have capacity, each pick uniform over the current
// pool. The target is the explicit targetSpawnCount clamped to
// [sumMin, sumMax], or a random value in the same inclusive range when
// the definition asks for RandomSpawnCount.
//
// Pure given the RNG stream: the same definition and seed produce the
// same multiset.
func Resolve(def model.LevelDefinition, rng *rand.Rand) (*model.LevelRunState, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("resolving level: %w", err)
	}

	sumMin := def.SumMin()
	sumMax := def.SumMax()

	pending := make([]model.EnemyType, 0, sumMax)
	pool := make([]extraSlot, 0, def.RuleCount())

	for i := 0; i < def.RuleCount(); i++ {
		rule := def.Rule(i)
		for range rule.MinCount() {
			pending = append(pending, rule.EnemyType())
		}
		if rule.ExtraCapacity() > 0 {
			pool = append(pool, extraSlot{ruleIndex: i, remaining: rule.ExtraCapacity()})
		}
	}

	target := def.TargetSpawnCount()
	if target == model.RandomSpawnCount {
		// Inclusive upper bound, matching the clamp branch.
		target = sumMin + rng.IntN(sumMax-sumMin+1)
	} else {
		target = clamp(target, sumMin, sumMax)
	}

	for extra := target - sumMin; extra > 0; extra-- {
		if len(pool) == 0 {
			return nil, fmt.Errorf("extra pool exhausted with %d spawns left to allocate (target %d, sumMin %d)", extra, target, sumMin)
		}
		pick := rng.IntN(len(pool))
		pending = append(pending, def.Rule(pool[pick].ruleIndex).EnemyType())
		pool[pick].remaining--
		if pool[pick].remaining == 0 {
			pool[pick] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		}
	}

	return model.NewLevelRunState(pending), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
