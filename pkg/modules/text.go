package modules

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// uiFace 界面文字字体（7x13 点阵）
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// DrawLabel 在 (x, y) 左上角绘制一行文字
func DrawLabel(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, uiFace, op)
}

// DrawCenteredLabel 以 (cx, cy) 为中心绘制一行文字
func DrawCenteredLabel(screen *ebiten.Image, str string, cx, cy float64, clr color.Color) {
	w, h := text.Measure(str, uiFace, 0)
	DrawLabel(screen, str, cx-w/2, cy-h/2, clr)
}
