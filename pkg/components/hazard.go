package components

// HazardComponent 危险区域标记（如掉落区）
// 本身无状态，进入检测的边沿锁存在 TriggerVolumeComponent 中
type HazardComponent struct{}
