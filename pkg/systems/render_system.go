package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 俯视图渲染
//
// 世界 X 轴映射到屏幕向右，Z 轴映射到屏幕向上，镜头以玩家为中心。
// 高度（Y）不参与投影：门升起时通过透明度表现开合程度。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	pixelsPerUnit float64
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		pixelsPerUnit: config.WorldPixelsPerUnit,
	}
}

// drawItem 待绘制的实体
type drawItem struct {
	id    ecs.EntityID
	layer int
}

// Draw 按层级从低到高绘制所有带形状的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	camera := utils.Vec3{}
	if _, _, playerPos, ok := findPlayer(s.entityManager); ok {
		camera = playerPos
	}

	ids := ecs.GetEntitiesWith2[*components.ShapeComponent, *components.PositionComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
		items = append(items, drawItem{id: id, layer: shape.Layer})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].layer < items[j].layer
	})

	bounds := screen.Bounds()
	centerX := float64(bounds.Dx()) / 2
	centerY := float64(bounds.Dy()) / 2

	for _, item := range items {
		s.drawEntity(screen, item.id, camera, centerX, centerY)
	}
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (s *RenderSystem) WorldToScreen(world, camera utils.Vec3, centerX, centerY float64) (float64, float64) {
	return centerX + (world.X-camera.X)*s.pixelsPerUnit,
		centerY - (world.Z-camera.Z)*s.pixelsPerUnit
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, camera utils.Vec3, centerX, centerY float64) {
	shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	x, y := s.WorldToScreen(pos.Position, camera, centerX, centerY)
	halfW := shape.HalfExtents.X * s.pixelsPerUnit
	halfH := shape.HalfExtents.Z * s.pixelsPerUnit
	clr := shape.Color

	if door, ok := ecs.GetComponent[*components.DoorComponent](s.entityManager, id); ok {
		clr = fade(clr, 1-0.7*doorOpenFraction(door, pos.Position))
	}

	switch shape.Kind {
	case components.ShapeBox:
		vector.DrawFilledRect(screen, float32(x-halfW), float32(y-halfH), float32(halfW*2), float32(halfH*2), clr, true)
	case components.ShapeCircle:
		radius := halfW
		if effect, ok := ecs.GetComponent[*components.EffectComponent](s.entityManager, id); ok {
			progress := 0.0
			if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
				progress = lifetime.Progress()
			}
			radius = (effect.StartRadius + (effect.EndRadius-effect.StartRadius)*progress) * s.pixelsPerUnit
			vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 2, fade(clr, 1-progress), true)
			return
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
	case components.ShapeDiamond:
		yaw := 0.0
		if rotation, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, id); ok {
			yaw = rotation.Yaw
		}
		drawDiamond(screen, x, y, halfW, yaw, clr)
	}
}

// doorOpenFraction 门当前位置在关闭与打开位置之间的比例 [0, 1]
func doorOpenFraction(door *components.DoorComponent, current utils.Vec3) float64 {
	span := utils.Distance(door.ClosedPosition, door.OpenPosition)
	if span == 0 {
		return 0
	}
	return utils.Clamp01(utils.Distance(door.ClosedPosition, current) / span)
}

// drawDiamond 绘制绕中心旋转 yaw 度的菱形轮廓
func drawDiamond(screen *ebiten.Image, x, y, radius, yaw float64, clr color.RGBA) {
	rad := yaw * math.Pi / 180
	var px, py [4]float32
	for i := 0; i < 4; i++ {
		angle := rad + float64(i)*math.Pi/2
		px[i] = float32(x + radius*math.Cos(angle))
		py[i] = float32(y + radius*math.Sin(angle))
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		vector.StrokeLine(screen, px[i], py[i], px[j], py[j], 2, clr, true)
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius/3), clr, true)
}

// fade 按比例缩放颜色的不透明度（预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
