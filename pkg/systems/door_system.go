package systems

import (
	"log"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/utils"
)

// DoorSystem 处理门的交互与开关动画
//
// 玩家在门的 OpenDistance 范围内且本帧按下交互键时切换开关并播放门的音效；
// 无论是否切换，门的位置每帧都以 OpenSpeed*deltaTime 为比例向目标位置插值。
type DoorSystem struct {
	entityManager *ecs.EntityManager
	input         game.InputSource
	audio         game.AudioGateway
}

// NewDoorSystem 创建门系统
//
// 参数:
//   - em: 实体管理器
//   - input: 输入源，为 nil 时门不可交互
//   - audio: 音频网关，为 nil 时跳过音效
func NewDoorSystem(em *ecs.EntityManager, input game.InputSource, audio game.AudioGateway) *DoorSystem {
	return &DoorSystem{
		entityManager: em,
		input:         input,
		audio:         audio,
	}
}

// Update 更新所有门
func (s *DoorSystem) Update(deltaTime float64) {
	interact := s.input != nil && s.input.InteractPressed()
	_, _, playerPos, hasPlayer := findPlayer(s.entityManager)

	doors := ecs.GetEntitiesWith2[*components.DoorComponent, *components.PositionComponent](s.entityManager)
	for _, id := range doors {
		door, _ := ecs.GetComponent[*components.DoorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if interact && hasPlayer && utils.Distance(pos.Position, playerPos) <= door.OpenDistance {
			s.toggle(id, door)
		}

		pos.Position = utils.Lerp(pos.Position, door.Target(), door.OpenSpeed*deltaTime)
	}
}

func (s *DoorSystem) toggle(id ecs.EntityID, door *components.DoorComponent) {
	door.IsOpen = !door.IsOpen
	log.Printf("[DoorSystem] Door %d open=%v", id, door.IsOpen)

	if s.audio != nil {
		s.audio.PlayCue(game.CueDoor)
	}
}
