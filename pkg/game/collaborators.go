package game

import "github.com/decker502/relicrun/pkg/config"

// SceneLoader 场景加载器
//
// 加载请求在下一次 SceneManager.Update 开始时生效，当前帧总能完整执行
type SceneLoader interface {
	Load(id config.SceneID) error
	// LoadByRelativeIndex 按构建顺序加载相对当前场景偏移 offset 的场景
	LoadByRelativeIndex(offset int) error
	CurrentScene() config.SceneID
	// Reload 重新加载当前场景
	Reload() error
}

// InputSource 游戏输入信号
type InputSource interface {
	// InteractPressed 交互键是否在本帧按下（边沿触发）
	InteractPressed() bool
	// PausePressed 暂停键是否在本帧按下（边沿触发）
	PausePressed() bool
	// Movement 水平面移动方向
	Movement() (dx, dz float64)
}

// Overlay 暂停界面
// 是否注册了暂停界面决定了能否进入暂停状态
type Overlay interface {
	Show()
	Hide()
}

// PointerCapture 鼠标指针捕获控制
type PointerCapture interface {
	SetCaptured(captured bool)
}
