package modules

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 菜单按钮尺寸
const (
	ButtonWidth   = 200.0
	ButtonHeight  = 36.0
	ButtonSpacing = 12.0
)

var (
	buttonColor         = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	buttonSelectedColor = color.RGBA{R: 90, G: 110, B: 160, A: 255}
	buttonBorderColor   = color.RGBA{R: 200, G: 200, B: 220, A: 255}
)

// Button 屏幕空间的矩形按钮
type Button struct {
	Label   string
	X, Y    float64 // 左上角
	W, H    float64
	OnClick func()
}

// Contains 判断屏幕坐标是否落在按钮内
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// ButtonList 一组竖直排列的按钮，支持鼠标点击和键盘导航
type ButtonList struct {
	Buttons  []*Button
	Selected int
}

// NewButtonList 以 (centerX, topY) 为顶部中心竖直排列按钮
func NewButtonList(centerX, topY float64, buttons ...*Button) *ButtonList {
	for i, b := range buttons {
		b.W = ButtonWidth
		b.H = ButtonHeight
		b.X = centerX - ButtonWidth/2
		b.Y = topY + float64(i)*(ButtonHeight+ButtonSpacing)
	}
	return &ButtonList{Buttons: buttons}
}

// HandleClick 处理一次点击，命中按钮时执行回调并返回 true
func (l *ButtonList) HandleClick(x, y float64) bool {
	for i, b := range l.Buttons {
		if b.Contains(x, y) {
			l.Selected = i
			l.activate(b)
			return true
		}
	}
	return false
}

// MoveSelection 移动键盘选中项，首尾循环
func (l *ButtonList) MoveSelection(delta int) {
	n := len(l.Buttons)
	if n == 0 {
		return
	}
	l.Selected = ((l.Selected+delta)%n + n) % n
}

// ActivateSelected 执行当前选中按钮的回调
func (l *ButtonList) ActivateSelected() {
	if l.Selected < 0 || l.Selected >= len(l.Buttons) {
		return
	}
	l.activate(l.Buttons[l.Selected])
}

func (l *ButtonList) activate(b *Button) {
	log.Printf("[ButtonList] %q clicked", b.Label)
	if b.OnClick != nil {
		b.OnClick()
	}
}

// UpdateInput 读取本帧的鼠标和键盘输入
// 上下方向键移动选中项，回车/空格确认
func (l *ButtonList) UpdateInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if l.HandleClick(float64(x), float64(y)) {
			return
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		l.MoveSelection(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		l.MoveSelection(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		l.ActivateSelected()
	}
}

// Draw 绘制所有按钮
func (l *ButtonList) Draw(screen *ebiten.Image) {
	for i, b := range l.Buttons {
		fill := buttonColor
		if i == l.Selected {
			fill = buttonSelectedColor
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, buttonBorderColor, false)
		DrawCenteredLabel(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, color.White)
	}
}
