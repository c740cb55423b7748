package game

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const testResourcesYAML = `version: "1.0"
base_path: audio
groups:
  music:
    music:
      - id: MUSIC_MENU
        path: music/menu.ogg
      - id: MUSIC_LEVEL1
        path: music/level1
  sfx:
    sounds:
      - id: SOUND_COLLECT
        path: sfx/collect.wav
      - id: SOUND_DOOR
        path: sfx/door.mp3
cues:
  menu: MUSIC_MENU
  level1: MUSIC_LEVEL1
  collect: SOUND_COLLECT
  door: SOUND_DOOR
`

// TestParseResourceConfig tests parsing the YAML audio resource configuration
func TestParseResourceConfig(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(testResourcesYAML), "inline")
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	if cfg.BasePath != "audio" {
		t.Errorf("Expected base_path 'audio', got '%s'", cfg.BasePath)
	}

	id, ok := cfg.CueResource(CueCollect)
	if !ok || id != "SOUND_COLLECT" {
		t.Errorf("Expected collect cue bound to SOUND_COLLECT, got %q (ok=%v)", id, ok)
	}
	if _, ok := cfg.CueResource(CueLevel2); ok {
		t.Error("Expected level2 cue to be unbound")
	}

	entries, err := cfg.buildResourceMap()
	if err != nil {
		t.Fatalf("buildResourceMap failed: %v", err)
	}

	tests := []struct {
		id   string
		path string
		loop bool
	}{
		{"MUSIC_MENU", "audio/music/menu.ogg", true},
		{"MUSIC_LEVEL1", "audio/music/level1.ogg", true}, // 缺省扩展名补 .ogg
		{"SOUND_COLLECT", "audio/sfx/collect.wav", false},
		{"SOUND_DOOR", "audio/sfx/door.mp3", false},
	}
	for _, tt := range tests {
		entry, ok := entries[tt.id]
		if !ok {
			t.Errorf("Expected resource ID '%s' in resource map", tt.id)
			continue
		}
		if entry.path != tt.path {
			t.Errorf("%s: expected path '%s', got '%s'", tt.id, tt.path, entry.path)
		}
		if entry.loop != tt.loop {
			t.Errorf("%s: expected loop=%v, got %v", tt.id, tt.loop, entry.loop)
		}
	}
}

// TestParseResourceConfigErrors tests invalid resource configurations
func TestParseResourceConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown cue",
			data:    "groups:\n  g:\n    sounds:\n      - {id: A, path: a.ogg}\ncues:\n  explosion: A\n",
			wantErr: "unknown audio cue",
		},
		{
			name:    "undefined resource",
			data:    "cues:\n  door: SOUND_MISSING\n",
			wantErr: "undefined resource",
		},
		{
			name:    "duplicate id",
			data:    "groups:\n  g:\n    sounds:\n      - {id: A, path: a.ogg}\n      - {id: A, path: b.ogg}\n",
			wantErr: "declared twice",
		},
		{
			name:    "missing id",
			data:    "groups:\n  g:\n    sounds:\n      - {path: a.ogg}\n",
			wantErr: "has no id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.data), "inline")
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestBuildFullPath tests path joining inside the assets file system
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"", "sfx/a.ogg", "sfx/a.ogg"},
		{"audio", "sfx/a.ogg", "audio/sfx/a.ogg"},
		{"audio/", "/sfx/a.ogg", "audio/sfx/a.ogg"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q): expected %q, got %q", tt.base, tt.rel, tt.want, got)
		}
	}
}

// TestLoadAudioByIDMissing tests that missing clips surface ErrResourceNotFound
func TestLoadAudioByIDMissing(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, nil)
	if err := rm.LoadResourceConfig([]byte(testResourcesYAML), "inline"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	if !rm.HasResource("SOUND_DOOR") {
		t.Error("Expected SOUND_DOOR to be configured")
	}

	_, err := rm.LoadAudioByID("SOUND_DOOR")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound for missing file, got %v", err)
	}

	_, err = rm.LoadAudioByID("SOUND_NOPE")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound for unknown ID, got %v", err)
	}
}

// TestLoadAudioWithoutContext tests that an existing clip without an audio context is skipped
func TestLoadAudioWithoutContext(t *testing.T) {
	assets := fstest.MapFS{
		"audio/sfx/door.mp3": &fstest.MapFile{Data: []byte("not really mp3")},
	}
	rm := NewResourceManager(assets, nil)

	_, err := rm.LoadSoundEffect("audio/sfx/door.mp3")
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("Expected ErrMissingCollaborator, got %v", err)
	}
	if rm.GetAudioPlayer("audio/sfx/door.mp3") != nil {
		t.Error("Failed load must not be cached")
	}
}
