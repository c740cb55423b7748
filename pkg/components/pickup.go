package components

// PickupComponent 可收集的目标物
type PickupComponent struct {
	ScoreValue    int     // 分值
	RotationSpeed float64 // 绕竖直轴旋转速度（度/秒）
	FallbackSound string  // 无音频网关时在原地播放的音效ID，可为空

	// Collected 收集锁存：一旦置位，无论触发事件再来多少次都不会重复上报
	Collected bool
}
