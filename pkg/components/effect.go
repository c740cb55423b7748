package components

// EffectComponent 装饰性特效（收集闪光）
// 随生命周期放大并淡出，由 LifetimeSystem 到期清理
type EffectComponent struct {
	StartRadius float64
	EndRadius   float64
}
