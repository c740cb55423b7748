package entities

import (
	"fmt"
	"log"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
)

// LevelEntities 关卡生成后的实体清单
type LevelEntities struct {
	Player  ecs.EntityID
	Doors   []ecs.EntityID
	Pickups []ecs.EntityID
	Hazards []ecs.EntityID
}

// BuildLevel 按关卡配置生成全部世界物体
//
// 参数:
//   - em: 实体管理器（通常是新场景独占的管理器）
//   - level: 已通过校验的关卡配置
func BuildLevel(em *ecs.EntityManager, level *config.LevelConfig) (*LevelEntities, error) {
	if level == nil {
		return nil, fmt.Errorf("level config cannot be nil")
	}

	var result LevelEntities
	var err error

	if result.Player, err = NewPlayerEntity(em, level.Player); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	for i, door := range level.Doors {
		id, err := NewDoorEntity(em, door)
		if err != nil {
			return nil, fmt.Errorf("spawn door %d: %w", i, err)
		}
		result.Doors = append(result.Doors, id)
	}

	for i, pickup := range level.Pickups {
		id, err := NewPickupEntity(em, pickup)
		if err != nil {
			return nil, fmt.Errorf("spawn pickup %d: %w", i, err)
		}
		result.Pickups = append(result.Pickups, id)
	}

	for i, hazard := range level.Hazards {
		id, err := NewHazardEntity(em, hazard)
		if err != nil {
			return nil, fmt.Errorf("spawn hazard %d: %w", i, err)
		}
		result.Hazards = append(result.Hazards, id)
	}

	log.Printf("[BuildLevel] %s: %d doors, %d pickups, %d hazards",
		level.ID, len(result.Doors), len(result.Pickups), len(result.Hazards))
	return &result, nil
}
