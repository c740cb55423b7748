package components

// RotationComponent 绕竖直轴的朝向（度，范围 [0, 360)），纯装饰
type RotationComponent struct {
	Yaw float64
}
