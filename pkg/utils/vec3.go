package utils

import "math"

// Vec3 三维向量（世界坐标，Y 轴为竖直方向）
type Vec3 struct {
	X, Y, Z float64
}

// Add 返回 v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub 返回 v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale 返回 v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length 返回向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance 返回两点之间的欧氏距离
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// Lerp 在 a 与 b 之间线性插值
// t 会被限制在 [0, 1] 范围内，t 越大越接近 b
//
// 每帧以 speed*deltaTime 作为 t 调用时，结果是渐近逼近：
// 距离目标越近移动越慢，有限时间内不会完全到达目标
func Lerp(a, b Vec3, t float64) Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Scale(t))
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// WrapDegrees 将角度规范化到 [0, 360) 范围
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
