package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the audio resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: audio
//	groups:
//	  group_name:
//	    music: [...]
//	    sounds: [...]
//	cues:
//	  menu: MUSIC_MENU
//	  collect: SOUND_COLLECT
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path relative to the assets directory
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
	Cues     map[string]string        `yaml:"cues"`      // Cue name -> resource ID
}

// ResourceGroup represents a collection of related audio resources.
// Music entries loop; sound entries play once.
type ResourceGroup struct {
	Music  []SoundResource `yaml:"music"`
	Sounds []SoundResource `yaml:"sounds"`
}

// SoundResource represents a single audio resource definition.
//
// Example:
//   - id: SOUND_COLLECT
//     path: sfx/collect.ogg
type SoundResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// audioEntry 资源ID对应的文件路径和播放方式
type audioEntry struct {
	path string
	loop bool
}

// ParseResourceConfig 解析音频资源配置，并检查 cues 引用的资源ID都已定义
func ParseResourceConfig(data []byte, source string) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config %s: %w", source, err)
	}

	entries, err := cfg.buildResourceMap()
	if err != nil {
		return nil, fmt.Errorf("invalid resource config %s: %w", source, err)
	}
	for cueName, id := range cfg.Cues {
		if _, err := ParseCue(cueName); err != nil {
			return nil, fmt.Errorf("invalid resource config %s: %w", source, err)
		}
		if _, ok := entries[id]; !ok {
			return nil, fmt.Errorf("invalid resource config %s: cue %q references undefined resource %q", source, cueName, id)
		}
	}
	return &cfg, nil
}

// CueResource 返回提示对应的资源ID
func (c *ResourceConfig) CueResource(cue Cue) (string, bool) {
	id, ok := c.Cues[cue.String()]
	return id, ok
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
// Paths without an extension default to .ogg.
func (c *ResourceConfig) buildResourceMap() (map[string]audioEntry, error) {
	entries := make(map[string]audioEntry)

	add := func(res SoundResource, loop bool) error {
		if res.ID == "" {
			return fmt.Errorf("resource with path %q has no id", res.Path)
		}
		if _, dup := entries[res.ID]; dup {
			return fmt.Errorf("resource %q declared twice", res.ID)
		}
		fullPath := buildFullPath(c.BasePath, res.Path)
		if path.Ext(fullPath) == "" {
			fullPath += ".ogg"
		}
		entries[res.ID] = audioEntry{path: fullPath, loop: loop}
		return nil
	}

	for _, group := range c.Groups {
		for _, music := range group.Music {
			if err := add(music, true); err != nil {
				return nil, err
			}
		}
		for _, sound := range group.Sounds {
			if err := add(sound, false); err != nil {
				return nil, err
			}
		}
	}
	return entries, nil
}

// buildFullPath constructs the slash-separated path for a resource inside the
// assets file system.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}
