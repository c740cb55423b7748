package systems

import (
	"math"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/utils"
)

// MovementSystem 根据输入在水平面上移动玩家（运动学移动，无物理响应）
type MovementSystem struct {
	entityManager *ecs.EntityManager
	input         game.InputSource
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, input game.InputSource) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 按输入方向移动玩家，斜向移动速度与直线相同
func (s *MovementSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	dx, dz := s.input.Movement()
	length := math.Hypot(dx, dz)
	if length == 0 {
		return
	}

	id, player, _, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	step := player.Speed * deltaTime / length
	pos.Position = pos.Position.Add(utils.Vec3{X: dx * step, Z: dz * step})
}
