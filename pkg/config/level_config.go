package config

import (
	"fmt"
	"io/fs"

	"github.com/decker502/relicrun/pkg/utils"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义了关卡的目标数量、时间限制以及关卡中的世界物体
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "level1"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）

	ObjectivesRequired int     `yaml:"objectivesRequired"` // 过关所需收集数量，默认等于收集物数量
	TimeLimit          float64 `yaml:"timeLimit"`          // 时间限制（秒），默认 120

	Player  PlayerConfig   `yaml:"player"`
	Doors   []DoorConfig   `yaml:"doors"`
	Pickups []PickupConfig `yaml:"pickups"`
	Hazards []HazardConfig `yaml:"hazards"`
}

// PlayerConfig 玩家出生配置
type PlayerConfig struct {
	Spawn utils.Vec3 `yaml:"spawn"`
	Speed float64    `yaml:"speed"` // 移动速度（单位/秒）
}

// DoorConfig 门配置
// 关闭位置取自 Position（生成时捕获），打开位置由 OpenPosition 指定
type DoorConfig struct {
	Position     utils.Vec3 `yaml:"position"`
	OpenPosition utils.Vec3 `yaml:"openPosition"`
	OpenDistance float64    `yaml:"openDistance"` // 最大交互距离，默认 3
	OpenSpeed    float64    `yaml:"openSpeed"`    // 插值速度系数，默认 2
}

// PickupConfig 收集物配置
type PickupConfig struct {
	Position      utils.Vec3 `yaml:"position"`
	ScoreValue    int        `yaml:"scoreValue"`    // 分值，默认 1
	RotationSpeed float64    `yaml:"rotationSpeed"` // 旋转速度（度/秒），默认 50
	FallbackSound string     `yaml:"fallbackSound"` // 无音频网关时在原地播放的音效ID（可选）
}

// HazardConfig 危险区域配置（如掉落区）
type HazardConfig struct {
	Position utils.Vec3 `yaml:"position"`
	Size     utils.Vec3 `yaml:"size"` // 触发体半尺寸
}

// LoadLevelConfig 从文件系统加载关卡配置
// 参数：
//
//	fsys - 文件系统（嵌入资源或 os.DirFS）
//	path - 关卡配置文件路径
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(fsys fs.FS, path string) (*LevelConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}
	return ParseLevelConfig(data, path)
}

// ParseLevelConfig 解析关卡配置 YAML
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	// 应用默认值
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	// 未配置目标数量时，以关卡中的收集物数量为准
	if config.ObjectivesRequired == 0 {
		config.ObjectivesRequired = len(config.Pickups)
	}

	if config.TimeLimit == 0 {
		config.TimeLimit = DefaultTimeLimit
	}

	if config.Player.Speed == 0 {
		config.Player.Speed = DefaultPlayerSpeed
	}

	for i := range config.Doors {
		door := &config.Doors[i]
		if door.OpenDistance == 0 {
			door.OpenDistance = DefaultDoorOpenDistance
		}
		if door.OpenSpeed == 0 {
			door.OpenSpeed = DefaultDoorOpenSpeed
		}
	}

	for i := range config.Pickups {
		pickup := &config.Pickups[i]
		if pickup.ScoreValue == 0 {
			pickup.ScoreValue = DefaultPickupScoreValue
		}
		if pickup.RotationSpeed == 0 {
			pickup.RotationSpeed = DefaultPickupRotationSpeed
		}
	}

	for i := range config.Hazards {
		hazard := &config.Hazards[i]
		if hazard.Size == (utils.Vec3{}) {
			hazard.Size = utils.Vec3{X: 1, Y: 0.5, Z: 1}
		}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if config.ObjectivesRequired <= 0 {
		return fmt.Errorf("objectivesRequired must be positive, got %d", config.ObjectivesRequired)
	}

	// 收集物不足时关卡无法通关
	if len(config.Pickups) < config.ObjectivesRequired {
		return fmt.Errorf("objectivesRequired is %d but only %d pickups are placed", config.ObjectivesRequired, len(config.Pickups))
	}

	if config.TimeLimit < 0 {
		return fmt.Errorf("timeLimit cannot be negative, got %v", config.TimeLimit)
	}

	for i, door := range config.Doors {
		if door.OpenDistance < 0 {
			return fmt.Errorf("doors[%d]: openDistance cannot be negative", i)
		}
		if door.OpenSpeed < 0 {
			return fmt.Errorf("doors[%d]: openSpeed cannot be negative", i)
		}
	}

	for i, hazard := range config.Hazards {
		if hazard.Size.X < 0 || hazard.Size.Y < 0 || hazard.Size.Z < 0 {
			return fmt.Errorf("hazards[%d]: size components cannot be negative", i)
		}
	}

	return nil
}
