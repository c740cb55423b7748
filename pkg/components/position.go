package components

import "github.com/decker502/relicrun/pkg/utils"

// PositionComponent 实体在世界中的位置（Y 轴竖直向上）
type PositionComponent struct {
	Position utils.Vec3
}
