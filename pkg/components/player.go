package components

// PlayerComponent 标记被追踪的玩家实体
// 关卡中只有一个玩家，门的距离判断和触发体检测都以它的位置为准
type PlayerComponent struct {
	Speed      float64 // 移动速度（单位/秒）
	HalfExtent float64 // 碰撞盒半边长
}
