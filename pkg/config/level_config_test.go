package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

// TestLoadLevelConfig 测试关卡配置文件加载
func TestLoadLevelConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		validYAML := `id: level1
name: "The Ruins"
objectivesRequired: 2
timeLimit: 90
player:
  spawn: {x: 0, y: 0, z: 0}
  speed: 4
doors:
  - position: {x: 5, y: 0, z: 0}
    openPosition: {x: 5, y: 3, z: 0}
pickups:
  - position: {x: 1, y: 0, z: 1}
  - position: {x: 2, y: 0, z: 2}
    scoreValue: 2
    rotationSpeed: 90
hazards:
  - position: {x: 0, y: -5, z: 0}
    size: {x: 50, y: 1, z: 50}
`
		fsys := fstest.MapFS{
			"levels/level1.yaml": &fstest.MapFile{Data: []byte(validYAML)},
		}

		config, err := LoadLevelConfig(fsys, "levels/level1.yaml")
		if err != nil {
			t.Fatalf("LoadLevelConfig() failed: %v", err)
		}

		if config.ID != "level1" {
			t.Errorf("Expected ID 'level1', got '%s'", config.ID)
		}
		if config.ObjectivesRequired != 2 {
			t.Errorf("Expected ObjectivesRequired 2, got %d", config.ObjectivesRequired)
		}
		if config.TimeLimit != 90 {
			t.Errorf("Expected TimeLimit 90, got %v", config.TimeLimit)
		}
		if config.Player.Speed != 4 {
			t.Errorf("Expected player speed 4, got %v", config.Player.Speed)
		}

		// 验证门的默认值
		if len(config.Doors) != 1 {
			t.Fatalf("Expected 1 door, got %d", len(config.Doors))
		}
		door := config.Doors[0]
		if door.OpenDistance != DefaultDoorOpenDistance {
			t.Errorf("Expected default openDistance %v, got %v", DefaultDoorOpenDistance, door.OpenDistance)
		}
		if door.OpenSpeed != DefaultDoorOpenSpeed {
			t.Errorf("Expected default openSpeed %v, got %v", DefaultDoorOpenSpeed, door.OpenSpeed)
		}
		if door.OpenPosition.Y != 3 {
			t.Errorf("Expected openPosition.y 3, got %v", door.OpenPosition.Y)
		}

		// 验证收集物默认值与显式值
		if config.Pickups[0].ScoreValue != DefaultPickupScoreValue {
			t.Errorf("Expected default scoreValue %d, got %d", DefaultPickupScoreValue, config.Pickups[0].ScoreValue)
		}
		if config.Pickups[0].RotationSpeed != DefaultPickupRotationSpeed {
			t.Errorf("Expected default rotationSpeed %v, got %v", DefaultPickupRotationSpeed, config.Pickups[0].RotationSpeed)
		}
		if config.Pickups[1].ScoreValue != 2 {
			t.Errorf("Expected scoreValue 2, got %d", config.Pickups[1].ScoreValue)
		}
		if config.Pickups[1].RotationSpeed != 90 {
			t.Errorf("Expected rotationSpeed 90, got %v", config.Pickups[1].RotationSpeed)
		}

		if len(config.Hazards) != 1 || config.Hazards[0].Size.X != 50 {
			t.Errorf("Expected 1 hazard of width 50, got %+v", config.Hazards)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLevelConfig(fstest.MapFS{}, "levels/nope.yaml")
		if err == nil {
			t.Fatal("Expected error for missing file, got nil")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected fs.ErrNotExist in chain, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseLevelConfig([]byte("id: [unterminated"), "inline")
		if err == nil {
			t.Error("Expected parse error, got nil")
		}
	})
}

// TestLevelConfigDefaults 测试默认值应用
func TestLevelConfigDefaults(t *testing.T) {
	data := `id: level2
pickups:
  - position: {x: 1, y: 0, z: 0}
  - position: {x: 2, y: 0, z: 0}
  - position: {x: 3, y: 0, z: 0}
hazards:
  - position: {x: 0, y: -3, z: 0}
`
	config, err := ParseLevelConfig([]byte(data), "inline")
	if err != nil {
		t.Fatalf("ParseLevelConfig() failed: %v", err)
	}

	// 未配置目标数量时取收集物数量
	if config.ObjectivesRequired != 3 {
		t.Errorf("Expected ObjectivesRequired 3, got %d", config.ObjectivesRequired)
	}
	if config.TimeLimit != DefaultTimeLimit {
		t.Errorf("Expected TimeLimit %v, got %v", DefaultTimeLimit, config.TimeLimit)
	}
	if config.Player.Speed != DefaultPlayerSpeed {
		t.Errorf("Expected player speed %v, got %v", DefaultPlayerSpeed, config.Player.Speed)
	}
	if config.Hazards[0].Size.X <= 0 || config.Hazards[0].Size.Y <= 0 {
		t.Errorf("Expected default hazard size, got %+v", config.Hazards[0].Size)
	}
}

// TestValidateLevelConfig 测试关卡配置验证
func TestValidateLevelConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing id",
			data:    "pickups:\n  - position: {x: 1, y: 0, z: 0}\n",
			wantErr: "level ID is required",
		},
		{
			name:    "no pickups",
			data:    "id: empty\n",
			wantErr: "objectivesRequired must be positive",
		},
		{
			name:    "not enough pickups",
			data:    "id: short\nobjectivesRequired: 3\npickups:\n  - position: {x: 1, y: 0, z: 0}\n",
			wantErr: "only 1 pickups",
		},
		{
			name:    "negative time limit",
			data:    "id: neg\ntimeLimit: -1\npickups:\n  - position: {x: 1, y: 0, z: 0}\n",
			wantErr: "timeLimit cannot be negative",
		},
		{
			name:    "negative door speed",
			data:    "id: door\npickups:\n  - position: {x: 1, y: 0, z: 0}\ndoors:\n  - openSpeed: -2\n",
			wantErr: "openSpeed cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.data), "inline")
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
