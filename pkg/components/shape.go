package components

import (
	"image/color"

	"github.com/decker502/relicrun/pkg/utils"
)

// ShapeKind 俯视图中的绘制形状
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeDiamond
	ShapeCircle
)

// ShapeComponent 俯视渲染信息
type ShapeComponent struct {
	Kind        ShapeKind
	HalfExtents utils.Vec3 // X/Z 用于俯视尺寸
	Color       color.RGBA
	Layer       int // 绘制层级，越大越靠上
}
