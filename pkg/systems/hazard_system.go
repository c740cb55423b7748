package systems

import (
	"log"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
)

// LevelRestarter 负责完整重载当前关卡（通常是 game.Coordinator）
type LevelRestarter interface {
	RestartLevel() error
	// Running 关卡是否仍在进行；已结束的关卡不再响应危险区域
	Running() bool
}

// HazardSystem 玩家进入危险区域时重新开始当前关卡
// 分数和剩余时间都不保留
type HazardSystem struct {
	entityManager *ecs.EntityManager
	restarter     LevelRestarter
}

// NewHazardSystem 创建危险区域系统，restarter 为 nil 时只记录警告
func NewHazardSystem(em *ecs.EntityManager, restarter LevelRestarter) *HazardSystem {
	return &HazardSystem{
		entityManager: em,
		restarter:     restarter,
	}
}

// Update 检查本帧是否有危险区域被进入，每帧最多触发一次重载
func (s *HazardSystem) Update(deltaTime float64) {
	hazards := ecs.GetEntitiesWith2[*components.HazardComponent, *components.TriggerVolumeComponent](s.entityManager)
	for _, id := range hazards {
		volume, _ := ecs.GetComponent[*components.TriggerVolumeComponent](s.entityManager, id)
		if !volume.Entered {
			continue
		}

		if s.restarter == nil {
			log.Printf("[HazardSystem] Warning: hazard %d entered but no level restarter is registered", id)
			return
		}
		if !s.restarter.Running() {
			return
		}

		log.Printf("[HazardSystem] Hazard %d entered, restarting level", id)
		if err := s.restarter.RestartLevel(); err != nil {
			log.Printf("[HazardSystem] Error: %v", err)
		}
		return
	}
}
