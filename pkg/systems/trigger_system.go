package systems

import (
	"math"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// TriggerSystem 检测玩家与触发体的重叠
//
// 每帧为每个触发体计算 Inside，并在玩家从外部进入的那一帧置位 Entered。
// 下游系统（收集、危险区域）只响应 Entered，所以每次进入只产生一次事件。
type TriggerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTriggerSystem 创建触发检测系统
func NewTriggerSystem(em *ecs.EntityManager) *TriggerSystem {
	return &TriggerSystem{entityManager: em}
}

// Update 刷新所有触发体的重叠状态
func (s *TriggerSystem) Update(deltaTime float64) {
	_, player, playerPos, hasPlayer := findPlayer(s.entityManager)

	volumes := ecs.GetEntitiesWith2[*components.TriggerVolumeComponent, *components.PositionComponent](s.entityManager)
	for _, id := range volumes {
		volume, _ := ecs.GetComponent[*components.TriggerVolumeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		overlapping := false
		if hasPlayer && !s.entityManager.IsMarkedForDestroy(id) {
			overlapping = overlaps(playerPos, player.HalfExtent, pos.Position, volume.HalfExtents)
		}

		volume.Entered = overlapping && !volume.Inside
		volume.Inside = overlapping
	}
}

// overlaps 判断以 a 为中心、半边长 aHalf 的立方体与以 b 为中心、半尺寸 bHalf 的盒子是否相交
func overlaps(a utils.Vec3, aHalf float64, b, bHalf utils.Vec3) bool {
	return math.Abs(a.X-b.X) <= aHalf+bHalf.X &&
		math.Abs(a.Y-b.Y) <= aHalf+bHalf.Y &&
		math.Abs(a.Z-b.Z) <= aHalf+bHalf.Z
}
