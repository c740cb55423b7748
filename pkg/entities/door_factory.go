package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// NewDoorEntity 创建门实体
// 关闭位置在生成时从初始位置捕获
func NewDoorEntity(em *ecs.EntityManager, cfg config.DoorConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	openDistance := cfg.OpenDistance
	if openDistance <= 0 {
		openDistance = config.DefaultDoorOpenDistance
	}
	openSpeed := cfg.OpenSpeed
	if openSpeed <= 0 {
		openSpeed = config.DefaultDoorOpenSpeed
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Position: cfg.Position})
	ecs.AddComponent(em, id, &components.DoorComponent{
		ClosedPosition: cfg.Position,
		OpenPosition:   cfg.OpenPosition,
		OpenDistance:   openDistance,
		OpenSpeed:      openSpeed,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:        components.ShapeBox,
		HalfExtents: utils.Vec3{X: 1, Y: 1.5, Z: 0.2},
		Color:       color.RGBA{R: 150, G: 100, B: 60, A: 255},
		Layer:       1,
	})
	return id, nil
}
