package model

import "fmt"

// SpawnRule is a per-enemy-type min/max quota for one level.
// Immutable after configuration load.
type SpawnRule struct {
	enemyType EnemyType
	minCount  int
	maxCount  int
}

// NewSpawnRule creates a spawn rule for one enemy type.
func NewSpawnRule(enemyType EnemyType, minCount, maxCount int) SpawnRule {
	return SpawnRule{
		enemyType: enemyType,
		minCount:  minCount,
		maxCount:  maxCount,
	}
}

// EnemyType returns the enemy type this rule spawns.
func (r SpawnRule) EnemyType() EnemyType {
	return r.enemyType
}

// MinCount returns the guaranteed number of spawns.
func (r SpawnRule) MinCount() int {
	return r.minCount
}

// MaxCount returns the spawn cap for this type.
func (r SpawnRule) MaxCount() int {
	return r.maxCount
}

// ExtraCapacity returns how many spawns beyond the minimum this rule
// may still supply. Rules with maxCount == minCount contribute no
// randomness and return 0.
func (r SpawnRule) ExtraCapacity() int {
	return r.maxCount - r.minCount
}

// Validate checks the rule's quota bounds.
func (r SpawnRule) Validate() error {
	if r.enemyType == "" {
		return fmt.Errorf("spawn rule has empty enemy type")
	}
	if r.minCount < 0 {
		return fmt.Errorf("spawn rule %q: minCount %d is negative", r.enemyType, r.minCount)
	}
	if r.maxCount < r.minCount {
		return fmt.Errorf("spawn rule %q: maxCount %d is below minCount %d", r.enemyType, r.maxCount, r.minCount)
	}
	return nil
}
