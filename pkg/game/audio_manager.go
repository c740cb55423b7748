package game

import (
	"log"

	"github.com/decker502/relicrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hearingRange 本地音效的可听距离（世界单位），超出后音量为 0
const hearingRange = 20.0

// AudioManager 音频管理器，AudioGateway 的默认实现
// 职责：
//   - 将音频提示（Cue）映射到资源ID并播放
//   - 背景音乐同一时间只播放一首，切换时停止上一首
//   - 音量和开关从 SettingsManager 读取并写回
//
// 资源缺失或解码失败只记录警告并跳过本次播放，不影响当前帧
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（用于加载音频），可为 nil
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置），可为 nil

	soundPlayers map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）

	currentMusic   *audio.Player
	currentMusicID string

	listener utils.Vec3 // 本地音效的收听位置（通常是玩家位置）

	// 内存中的音量，settingsManager 为 nil 时使用
	musicVolume  float64
	soundVolume  float64
	musicEnabled bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件），可为 nil（静音模式）
//   - sm: SettingsManager 实例（用于读取音量设置），可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		musicVolume:     DefaultSettings().MusicVolume,
		soundVolume:     DefaultSettings().SoundVolume,
		musicEnabled:    true,
	}
	return am
}

// PlayCue 播放音频提示
// 音乐类提示循环播放并替换当前背景音乐，其余提示作为一次性音效播放
func (am *AudioManager) PlayCue(cue Cue) {
	resourceID, ok := am.cueResource(cue)
	if !ok {
		log.Printf("[AudioManager] Warning: no resource bound to cue %s", cue)
		return
	}

	if cue.IsMusic() {
		am.PlayMusic(resourceID)
		return
	}
	am.PlaySound(resourceID)
}

// SetVolume 设置通道音量
func (am *AudioManager) SetVolume(channel Channel, level float64) {
	switch channel {
	case ChannelMusic:
		am.SetMusicVolume(level)
	case ChannelSfx:
		am.SetSoundVolume(level)
	default:
		log.Printf("[AudioManager] Warning: unknown channel %s", channel)
	}
}

// PlayAt 在世界坐标处播放一次性音效，音量随与收听位置的距离衰减
func (am *AudioManager) PlayAt(soundID string, position utils.Vec3) {
	attenuation := 1 - utils.Distance(position, am.listener)/hearingRange
	am.playSound(soundID, am.getSoundVolume()*utils.Clamp01(attenuation))
}

// SetListenerPosition 更新本地音效的收听位置
func (am *AudioManager) SetListenerPosition(position utils.Vec3) {
	am.listener = position
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	return am.playSound(soundID, am.getSoundVolume())
}

func (am *AudioManager) playSound(soundID string, volume float64) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getPlayer(am.soundPlayers, soundID)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 播放背景音乐
// 同一时间只能播放一首背景音乐；音乐关闭时仍然播放，但音量为 0
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(musicID string) bool {
	// 如果已经在播放同一首音乐，不重复播放
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getPlayer(am.musicPlayers, musicID)
	if player == nil {
		return false
	}

	volume := am.effectiveMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// CurrentMusicID 返回当前背景音乐的资源ID
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// SetMusicVolume 设置音乐音量，并立即应用到当前播放的背景音乐
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetMusicVolume(volume float64) {
	volume = clampVolume(volume)
	am.musicVolume = volume
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	am.applyMusicVolume()
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	volume = clampVolume(volume)
	am.soundVolume = volume
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// SetMusicEnabled 打开或关闭背景音乐
// 关闭时当前音乐静音而不是停止，重新打开后从原位置继续
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	am.musicEnabled = enabled
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
	}
	am.applyMusicVolume()
}

// MusicEnabled 背景音乐是否打开
func (am *AudioManager) MusicEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicEnabled
	}
	return am.musicEnabled
}

// GetMusicVolume 获取当前音乐音量设置
func (am *AudioManager) GetMusicVolume() float64 {
	return am.getMusicVolume()
}

// GetSoundVolume 获取当前音效音量设置
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// EffectiveMusicVolume 返回实际应用到播放器的音乐音量（关闭时为 0）
func (am *AudioManager) EffectiveMusicVolume() float64 {
	return am.effectiveMusicVolume()
}

// Preload 预加载提示对应的音频，避免首次播放时的延迟
func (am *AudioManager) Preload(cues ...Cue) {
	loaded := 0
	for _, cue := range cues {
		resourceID, ok := am.cueResource(cue)
		if !ok {
			continue
		}
		cache := am.soundPlayers
		if cue.IsMusic() {
			cache = am.musicPlayers
		}
		if am.getPlayer(cache, resourceID) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d cues", loaded, len(cues))
}

func (am *AudioManager) applyMusicVolume() {
	volume := am.effectiveMusicVolume()
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(volume)
	}
	for _, player := range am.musicPlayers {
		player.SetVolume(volume)
	}
}

func (am *AudioManager) cueResource(cue Cue) (string, bool) {
	if am.resourceManager == nil || am.resourceManager.Config() == nil {
		return "", false
	}
	return am.resourceManager.Config().CueResource(cue)
}

// getPlayer 获取或加载播放器
func (am *AudioManager) getPlayer(cache map[string]*audio.Player, resourceID string) *audio.Player {
	if player, exists := cache[resourceID]; exists {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadAudioByID(resourceID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", resourceID, err)
		return nil
	}
	cache[resourceID] = player
	return player
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

func (am *AudioManager) effectiveMusicVolume() float64 {
	if !am.MusicEnabled() {
		return 0
	}
	return am.getMusicVolume()
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return am.musicVolume
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return am.soundVolume
}
