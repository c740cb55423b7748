package config

// 游戏全局配置常量
// 本文件定义窗口尺寸、关卡默认值、转场延迟和音量等调优参数

// 窗口配置
const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// WorldPixelsPerUnit 俯视图渲染时每个世界单位对应的像素数
	WorldPixelsPerUnit = 32.0
)

// 帧时间配置
const (
	// FixedDeltaTime 每个 tick 的墙钟时间（秒），ebiten 默认 60 TPS
	FixedDeltaTime = 1.0 / 60.0
)

// 关卡默认值
const (
	// DefaultObjectivesRequired 关卡未配置目标数量且没有收集物时使用的默认值
	DefaultObjectivesRequired = 5

	// DefaultTimeLimit 关卡默认时间限制（秒），2 分钟
	DefaultTimeLimit = 120.0

	// TransitionDelay 胜利/失败后到切换场景之间的延迟（秒）
	// 留出时间让收集音效和动画播放完毕
	TransitionDelay = 1.0
)

// 世界物体默认值
const (
	DefaultDoorOpenDistance    = 3.0  // 门的最大交互距离（世界单位）
	DefaultDoorOpenSpeed       = 2.0  // 门的插值速度系数
	DefaultPickupScoreValue    = 1    // 收集物分值
	DefaultPickupRotationSpeed = 50.0 // 收集物旋转速度（度/秒）
	DefaultPickupHalfExtent    = 0.5  // 收集物触发体半尺寸
	DefaultPlayerSpeed         = 5.0  // 玩家移动速度（单位/秒）
	DefaultPlayerHalfExtent    = 0.4  // 玩家碰撞体半尺寸

	// EffectLifetime 收集特效的存活时间（秒），到期自动销毁
	EffectLifetime = 2.0
)

// 音量配置
const (
	// DefaultMusicVolume 背景音乐默认音量，选项菜单"开启音乐"时恢复到此值
	DefaultMusicVolume = 0.3

	// DefaultSfxVolume 音效默认音量
	DefaultSfxVolume = 0.5

	// AudioSampleRate 音频上下文采样率
	AudioSampleRate = 48000
)
