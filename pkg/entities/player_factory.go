package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩家出生配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: em 为 nil 时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg config.PlayerConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	speed := cfg.Speed
	if speed <= 0 {
		speed = config.DefaultPlayerSpeed
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Position: cfg.Spawn})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:      speed,
		HalfExtent: config.DefaultPlayerHalfExtent,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:        components.ShapeCircle,
		HalfExtents: utils.Vec3{X: config.DefaultPlayerHalfExtent, Y: 1, Z: config.DefaultPlayerHalfExtent},
		Color:       color.RGBA{R: 80, G: 170, B: 255, A: 255},
		Layer:       3,
	})
	return id, nil
}
