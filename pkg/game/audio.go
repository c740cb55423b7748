package game

import (
	"fmt"

	"github.com/decker502/relicrun/pkg/utils"
)

// Cue 音频提示名（封闭枚举）
type Cue int

const (
	CueMenu Cue = iota
	CueLevel1
	CueLevel2
	CueCollect
	CueDoor
)

var cueKeys = map[Cue]string{
	CueMenu:    "menu",
	CueLevel1:  "level1",
	CueLevel2:  "level2",
	CueCollect: "collect",
	CueDoor:    "door",
}

func (c Cue) String() string {
	if key, ok := cueKeys[c]; ok {
		return key
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// IsMusic 音乐类提示循环播放，其余为一次性音效
func (c Cue) IsMusic() bool {
	return c == CueMenu || c == CueLevel1 || c == CueLevel2
}

// ParseCue 将配置中的提示名解析为 Cue
func ParseCue(key string) (Cue, error) {
	for cue, k := range cueKeys {
		if k == key {
			return cue, nil
		}
	}
	return 0, fmt.Errorf("unknown audio cue %q: %w", key, ErrResourceNotFound)
}

// Channel 音量通道
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelSfx
)

func (c Channel) String() string {
	switch c {
	case ChannelMusic:
		return "music"
	case ChannelSfx:
		return "sfx"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// AudioGateway 全局音频分发接口
//
// 调用即发即忘：播放失败只记录日志，不向调用方返回错误
type AudioGateway interface {
	PlayCue(cue Cue)
	// SetVolume 设置通道音量，level 范围 [0, 1]
	SetVolume(channel Channel, level float64)
}

// PositionalPlayer 在世界坐标处播放一次性音效
// 音频网关不存在时，收集物使用它作为本地回退
type PositionalPlayer interface {
	PlayAt(soundID string, position utils.Vec3)
}
