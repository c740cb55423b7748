package modules

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDSource 提供 HUD 显示的实时数值（通常是 game.Coordinator）
type HUDSource interface {
	FormattedTimeRemaining() string
	ObjectiveProgress() string
}

// HUDModule 关卡内的计时器和目标进度显示
// 每帧从 HUDSource 拉取最新值，不缓存跨帧状态
type HUDModule struct {
	source HUDSource

	timeText     string
	progressText string
}

// NewHUDModule 创建 HUD 模块
func NewHUDModule(source HUDSource) *HUDModule {
	m := &HUDModule{source: source}
	m.Update()
	return m
}

// Update 刷新显示文本
func (m *HUDModule) Update() {
	if m.source == nil {
		m.timeText = "--:--"
		m.progressText = "-/-"
		return
	}
	m.timeText = m.source.FormattedTimeRemaining()
	m.progressText = m.source.ObjectiveProgress()
}

// TimeText 当前显示的剩余时间
func (m *HUDModule) TimeText() string {
	return m.timeText
}

// ProgressText 当前显示的目标进度
func (m *HUDModule) ProgressText() string {
	return m.progressText
}

// Draw 在屏幕左上角绘制 HUD
func (m *HUDModule) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 8, 8, 150, 44, color.RGBA{A: 160}, false)
	DrawLabel(screen, "Time  "+m.timeText, 16, 14, color.White)
	DrawLabel(screen, "Relics "+m.progressText, 16, 32, color.RGBA{R: 255, G: 210, B: 60, A: 255})
}
