package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	auaudio "github.com/decker502/relicrun/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for loading and caching audio clips.
// Clips are read from an fs.FS (usually os.DirFS of the assets directory)
// and decoded once; players are reused on subsequent requests.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(os.DirFS("assets"), audioContext)
//	if err := rm.LoadResourceConfig(data); err != nil { ... }
//	player, err := rm.LoadAudioByID("MUSIC_MENU")
type ResourceManager struct {
	assets       fs.FS
	audioContext *audio.Context
	audioCache   map[string]*audio.Player // path -> Player

	config      *ResourceConfig
	resourceMap map[string]audioEntry // Resource ID -> file path + loop flag
}

// NewResourceManager creates a ResourceManager reading from assets.
// audioContext may be nil, in which case every load fails with an error
// and audio playback is skipped.
func NewResourceManager(assets fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		assets:       assets,
		audioContext: audioContext,
		audioCache:   make(map[string]*audio.Player),
		resourceMap:  make(map[string]audioEntry),
	}
}

// LoadResourceConfig parses the YAML resource configuration and builds the
// resource ID -> path mapping used by LoadAudioByID.
func (rm *ResourceManager) LoadResourceConfig(data []byte, source string) error {
	cfg, err := ParseResourceConfig(data, source)
	if err != nil {
		return err
	}
	entries, err := cfg.buildResourceMap()
	if err != nil {
		return err
	}
	rm.config = cfg
	rm.resourceMap = entries
	return nil
}

// Config 返回已加载的资源配置，未加载时为 nil
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// HasResource 资源ID是否已在配置中定义
func (rm *ResourceManager) HasResource(resourceID string) bool {
	_, ok := rm.resourceMap[resourceID]
	return ok
}

// LoadAudioByID loads an audio resource using its resource ID.
// Music resources are wrapped in an infinite loop; sounds play once.
//
// Returns an error wrapping ErrResourceNotFound if the ID is not configured
// or the file does not exist.
func (rm *ResourceManager) LoadAudioByID(resourceID string) (*audio.Player, error) {
	entry, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("audio resource %s: %w", resourceID, ErrResourceNotFound)
	}
	if entry.loop {
		return rm.LoadAudio(entry.path)
	}
	return rm.LoadSoundEffect(entry.path)
}

// LoadAudio loads a looping audio track (background music) from path and caches it.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound effect from path and caches it.
// Unlike LoadAudio, the stream is NOT wrapped in an infinite loop.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
// Returns nil if the audio has not been loaded yet.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

func (rm *ResourceManager) loadPlayer(filePath string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[filePath]; exists {
		return cachedPlayer, nil
	}

	if rm.assets == nil {
		return nil, fmt.Errorf("audio file %s: no assets: %w", filePath, ErrResourceNotFound)
	}

	// Read the entire file into memory so the stream can seek without an open handle
	audioData, err := fs.ReadFile(rm.assets, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("audio file %s: %w", filePath, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to read audio file %s: %w", filePath, err)
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio file %s: audio context: %w", filePath, ErrMissingCollaborator)
	}

	stream, err := decodeAudio(bytes.NewReader(audioData), filePath, rm.audioContext.SampleRate())
	if err != nil {
		return nil, err
	}

	var source io.Reader = stream
	if loop {
		source = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", filePath, err)
	}

	rm.audioCache[filePath] = player
	return player, nil
}

// decodedStream 解码后的音频流
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 按扩展名选择解码器
func decodeAudio(reader io.ReadSeeker, filePath string, sampleRate int) (decodedStream, error) {
	ext := strings.ToLower(path.Ext(filePath))
	switch ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", filePath, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", filePath, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", filePath, err)
		}
		return stream, nil
	case ".au":
		stream, err := auaudio.DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", filePath, err)
		}
		return resample(stream, stream.Length(), stream.SampleRate(), sampleRate), nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
	}
}

// resampledStream 重采样后的流，长度按采样率比例换算并按帧（4 字节）对齐
type resampledStream struct {
	io.ReadSeeker
	length int64
}

func (r *resampledStream) Length() int64 {
	return r.length
}

func resample(stream decodedStream, size int64, from, to int) decodedStream {
	if from == to || to <= 0 {
		return stream
	}
	length := size * int64(to) / int64(from)
	length -= length % 4
	return &resampledStream{
		ReadSeeker: audio.Resample(stream, size, from, to),
		length:     length,
	}
}
