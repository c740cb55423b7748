package components

import "github.com/decker502/relicrun/pkg/utils"

// TriggerVolumeComponent 轴对齐触发体
// 玩家进入时产生事件，但不产生物理碰撞响应
type TriggerVolumeComponent struct {
	HalfExtents utils.Vec3 // 触发体半尺寸，中心为实体位置

	Inside  bool // 玩家当前是否在触发体内
	Entered bool // 玩家是否在本帧进入（仅进入的那一帧为 true）
}
