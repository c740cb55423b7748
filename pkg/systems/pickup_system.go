package systems

import (
	"fmt"
	"log"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/entities"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/utils"
)

// ObjectiveReporter 接收目标收集事件（通常是 game.Coordinator）
type ObjectiveReporter interface {
	ReportObjectiveCollected()
}

// PickupSystem 处理收集物的旋转和拾取
type PickupSystem struct {
	entityManager *ecs.EntityManager
	reporter      ObjectiveReporter
	audio         game.AudioGateway
	fallback      game.PositionalPlayer
}

// NewPickupSystem 创建收集系统
//
// 参数:
//   - em: 实体管理器
//   - reporter: 目标计数的接收者；为 nil 时拾取会报错且收集物保留在场景中
//   - audio: 音频网关，为 nil 时使用 fallback 在原地播放
//   - fallback: 本地音效播放器，可为 nil
func NewPickupSystem(em *ecs.EntityManager, reporter ObjectiveReporter, audio game.AudioGateway, fallback game.PositionalPlayer) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		reporter:      reporter,
		audio:         audio,
		fallback:      fallback,
	}
}

// Update 旋转所有收集物，并拾取本帧被玩家进入的收集物
// 单个收集物的失败只记录日志，不影响其它收集物和本帧后续系统
func (s *PickupSystem) Update(deltaTime float64) {
	pickups := ecs.GetEntitiesWith2[*components.PickupComponent, *components.PositionComponent](s.entityManager)
	for _, id := range pickups {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)

		if rotation, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, id); ok {
			rotation.Yaw = utils.WrapDegrees(rotation.Yaw + pickup.RotationSpeed*deltaTime)
		}

		volume, ok := ecs.GetComponent[*components.TriggerVolumeComponent](s.entityManager, id)
		if !ok || !volume.Entered {
			continue
		}
		if err := s.Collect(id); err != nil {
			log.Printf("[PickupSystem] Error: %v", err)
		}
	}
}

// Collect 拾取收集物：播放收集音效、上报目标、生成闪光特效并移除实体
//
// 同一收集物最多上报一次；已拾取的收集物再次调用时直接返回 nil。
// 没有接收者时返回 game.ErrMissingCollaborator，收集物保持未拾取状态。
func (s *PickupSystem) Collect(id ecs.EntityID) error {
	pickup, ok := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)
	if !ok {
		return fmt.Errorf("collect entity %d: pickup: %w", id, game.ErrResourceNotFound)
	}
	if pickup.Collected {
		return nil
	}
	if s.reporter == nil {
		return fmt.Errorf("collect entity %d: objective reporter: %w", id, game.ErrMissingCollaborator)
	}

	pickup.Collected = true

	var position utils.Vec3
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		position = pos.Position
	}

	s.playCollectSound(pickup, position)
	s.reporter.ReportObjectiveCollected()

	if _, err := entities.NewCollectEffect(s.entityManager, position); err != nil {
		log.Printf("[PickupSystem] Warning: collect effect: %v", err)
	}
	s.entityManager.DestroyEntity(id)
	return nil
}

func (s *PickupSystem) playCollectSound(pickup *components.PickupComponent, position utils.Vec3) {
	if s.audio != nil {
		s.audio.PlayCue(game.CueCollect)
		return
	}
	if s.fallback != nil && pickup.FallbackSound != "" {
		s.fallback.PlayAt(pickup.FallbackSound, position)
	}
}
