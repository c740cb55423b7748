package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// NewPickupEntity 创建收集物实体
func NewPickupEntity(em *ecs.EntityManager, cfg config.PickupConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	scoreValue := cfg.ScoreValue
	if scoreValue <= 0 {
		scoreValue = config.DefaultPickupScoreValue
	}
	rotationSpeed := cfg.RotationSpeed
	if rotationSpeed == 0 {
		rotationSpeed = config.DefaultPickupRotationSpeed
	}

	half := config.DefaultPickupHalfExtent
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Position: cfg.Position})
	ecs.AddComponent(em, id, &components.PickupComponent{
		ScoreValue:    scoreValue,
		RotationSpeed: rotationSpeed,
		FallbackSound: cfg.FallbackSound,
	})
	ecs.AddComponent(em, id, &components.RotationComponent{})
	ecs.AddComponent(em, id, &components.TriggerVolumeComponent{
		HalfExtents: utils.Vec3{X: half, Y: half, Z: half},
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:        components.ShapeDiamond,
		HalfExtents: utils.Vec3{X: half, Y: half, Z: half},
		Color:       color.RGBA{R: 255, G: 210, B: 60, A: 255},
		Layer:       2,
	})
	return id, nil
}
