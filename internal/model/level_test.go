package model

import (
	"testing"
	"time"
)

func testRules() []SpawnRule {
	return []SpawnRule{
		NewSpawnRule("grunt", 3, 6),
		NewSpawnRule("archer", 1, 3),
	}
}

func TestNewLevelDefinition(t *testing.T) {
	def := NewLevelDefinition(testRules(), 5*time.Second, 10*time.Second, RandomSpawnCount)

	if def.RuleCount() != 2 {
		t.Errorf("RuleCount() = %d, want 2", def.RuleCount())
	}
	if def.SpawnWindow() != 5*time.Second {
		t.Errorf("SpawnWindow() = %v, want 5s", def.SpawnWindow())
	}
	if def.TimeLimit() != 10*time.Second {
		t.Errorf("TimeLimit() = %v, want 10s", def.TimeLimit())
	}
	if def.TargetSpawnCount() != RandomSpawnCount {
		t.Errorf("TargetSpawnCount() = %d, want %d", def.TargetSpawnCount(), RandomSpawnCount)
	}
	if def.SumMin() != 4 {
		t.Errorf("SumMin() = %d, want 4", def.SumMin())
	}
	if def.SumMax() != 9 {
		t.Errorf("SumMax() = %d, want 9", def.SumMax())
	}
}

func TestLevelDefinition_RulesReturnsCopy(t *testing.T) {
	def := NewLevelDefinition(testRules(), 5*time.Second, 10*time.Second, RandomSpawnCount)

	rules := def.Rules()
	rules[0] = NewSpawnRule("mutated", 0, 0)

	if def.Rule(0).EnemyType() != "grunt" {
		t.Errorf("Rule(0).EnemyType() = %q after mutating Rules() copy, want grunt", def.Rule(0).EnemyType())
	}
}

func TestLevelDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		def     LevelDefinition
		wantErr bool
	}{
		{
			"valid random target",
			NewLevelDefinition(testRules(), 5*time.Second, 10*time.Second, RandomSpawnCount),
			false,
		},
		{
			"valid explicit target",
			NewLevelDefinition(testRules(), 5*time.Second, 10*time.Second, 6),
			false,
		},
		{
			"no rules",
			NewLevelDefinition(nil, 5*time.Second, 10*time.Second, RandomSpawnCount),
			true,
		},
		{
			"bad rule",
			NewLevelDefinition([]SpawnRule{NewSpawnRule("grunt", 5, 2)}, 5*time.Second, 10*time.Second, RandomSpawnCount),
			true,
		},
		{
			"zero spawn window",
			NewLevelDefinition(testRules(), 0, 10*time.Second, RandomSpawnCount),
			true,
		},
		{
			"negative spawn window",
			NewLevelDefinition(testRules(), -time.Second, 10*time.Second, RandomSpawnCount),
			true,
		},
		{
			"zero time limit",
			NewLevelDefinition(testRules(), 5*time.Second, 0, RandomSpawnCount),
			true,
		},
		{
			"target below sentinel",
			NewLevelDefinition(testRules(), 5*time.Second, 10*time.Second, -2),
			true,
		},
		{
			"level can never spawn",
			NewLevelDefinition([]SpawnRule{NewSpawnRule("grunt", 0, 0)}, 5*time.Second, 10*time.Second, RandomSpawnCount),
			true,
		},
		{
			"explicit zero target with zero minimums",
			NewLevelDefinition([]SpawnRule{NewSpawnRule("grunt", 0, 4)}, 5*time.Second, 10*time.Second, 0),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
