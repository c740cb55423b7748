package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
)

// NewHazardEntity 创建危险区域实体（触发体 + 危险标记）
func NewHazardEntity(em *ecs.EntityManager, cfg config.HazardConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Position: cfg.Position})
	ecs.AddComponent(em, id, &components.HazardComponent{})
	ecs.AddComponent(em, id, &components.TriggerVolumeComponent{HalfExtents: cfg.Size})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:        components.ShapeBox,
		HalfExtents: cfg.Size,
		Color:       color.RGBA{R: 200, G: 40, B: 40, A: 120},
		Layer:       0,
	})
	return id, nil
}
