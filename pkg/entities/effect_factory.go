package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// NewCollectEffect 创建收集闪光特效实体
// 特效在原地扩散淡出，config.EffectLifetime 秒后由 LifetimeSystem 清理
//
// 参数:
//   - em: 实体管理器
//   - position: 特效的世界坐标（通常为收集物位置）
func NewCollectEffect(em *ecs.EntityManager, position utils.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Position: position})
	ecs.AddComponent(em, id, &components.EffectComponent{
		StartRadius: config.DefaultPickupHalfExtent,
		EndRadius:   config.DefaultPickupHalfExtent * 4,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: config.EffectLifetime,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:  components.ShapeCircle,
		Color: color.RGBA{R: 255, G: 245, B: 180, A: 255},
		Layer: 4,
	})
	return id, nil
}
