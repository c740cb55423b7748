// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 键位配置
type KeyBindings struct {
	Interact []ebiten.Key // 交互（开关门）
	Pause    []ebiten.Key // 暂停切换
	Forward  []ebiten.Key
	Back     []ebiten.Key
	Left     []ebiten.Key
	Right    []ebiten.Key
}

// DefaultKeyBindings 返回默认键位：E 交互，ESC/P 暂停，WASD/方向键移动
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Interact: []ebiten.Key{ebiten.KeyE},
		Pause:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		Forward:  []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Back:     []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:     []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	}
}

// KeyboardInput 基于 inpututil 的键盘输入源
//
// 交互和暂停都是边沿触发（仅按下的那一帧返回 true），
// 移动是电平触发（按住期间持续返回方向）
type KeyboardInput struct {
	bindings KeyBindings
}

// NewKeyboardInput 创建键盘输入源
func NewKeyboardInput(bindings KeyBindings) *KeyboardInput {
	return &KeyboardInput{bindings: bindings}
}

// InteractPressed 交互键是否在本帧按下
func (k *KeyboardInput) InteractPressed() bool {
	return anyJustPressed(k.bindings.Interact)
}

// PausePressed 暂停键是否在本帧按下
func (k *KeyboardInput) PausePressed() bool {
	return anyJustPressed(k.bindings.Pause)
}

// Movement 返回水平面上的移动方向（X 向右，Z 向前），未归一化
func (k *KeyboardInput) Movement() (dx, dz float64) {
	if anyPressed(k.bindings.Right) {
		dx++
	}
	if anyPressed(k.bindings.Left) {
		dx--
	}
	if anyPressed(k.bindings.Forward) {
		dz++
	}
	if anyPressed(k.bindings.Back) {
		dz--
	}
	return dx, dz
}

// JustPressed 指定按键是否在本帧按下（菜单场景使用）
func (k *KeyboardInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
