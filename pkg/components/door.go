package components

import "github.com/decker502/relicrun/pkg/utils"

// DoorComponent 可交互的门
//
// 玩家在 OpenDistance 内按下交互键时切换开关，
// 显示位置每帧向目标位置插值，渐近逼近而不是瞬间到位
type DoorComponent struct {
	ClosedPosition utils.Vec3 // 关闭位置（生成时捕获）
	OpenPosition   utils.Vec3 // 打开位置（关卡配置）
	IsOpen         bool
	OpenDistance   float64 // 最大交互距离
	OpenSpeed      float64 // 插值速度系数
}

// Target 返回当前开关状态对应的目标位置
func (d *DoorComponent) Target() utils.Vec3 {
	if d.IsOpen {
		return d.OpenPosition
	}
	return d.ClosedPosition
}
