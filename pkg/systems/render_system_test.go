package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// TestWorldToScreen 测试俯视投影：X 向右，Z 向上，镜头居中
func TestWorldToScreen(t *testing.T) {
	sys := NewRenderSystem(ecs.NewEntityManager())
	sys.pixelsPerUnit = 10

	camera := utils.Vec3{X: 1, Y: 5, Z: 1}
	tests := []struct {
		name         string
		world        utils.Vec3
		wantX, wantY float64
	}{
		{"camera center", camera, 100, 50},
		{"right", utils.Vec3{X: 3, Z: 1}, 120, 50},
		{"forward is up", utils.Vec3{X: 1, Z: 4}, 100, 20},
		{"height ignored", utils.Vec3{X: 1, Y: -20, Z: 1}, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := sys.WorldToScreen(tt.world, camera, 100, 50)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WorldToScreen() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestDoorOpenFraction 测试门开合比例
func TestDoorOpenFraction(t *testing.T) {
	door := &components.DoorComponent{
		ClosedPosition: utils.Vec3{},
		OpenPosition:   utils.Vec3{Y: 4},
	}

	if got := doorOpenFraction(door, utils.Vec3{}); got != 0 {
		t.Errorf("Expected closed fraction 0, got %v", got)
	}
	if got := doorOpenFraction(door, utils.Vec3{Y: 1}); got != 0.25 {
		t.Errorf("Expected fraction 0.25, got %v", got)
	}
	if got := doorOpenFraction(door, utils.Vec3{Y: 8}); got != 1 {
		t.Errorf("Expected fraction clamped to 1, got %v", got)
	}

	static := &components.DoorComponent{}
	if got := doorOpenFraction(static, utils.Vec3{Y: 2}); got != 0 {
		t.Errorf("Expected zero span door to report 0, got %v", got)
	}
}

// TestFade 测试颜色淡出
func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := fade(c, 1); got != c {
		t.Errorf("Expected unchanged color, got %+v", got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("Expected transparent color, got %+v", got)
	}
	if got := fade(c, 0.5); got.A != 127 || got.R != 100 {
		t.Errorf("Expected half alpha, got %+v", got)
	}
}
