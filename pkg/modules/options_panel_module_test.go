package modules

import (
	"errors"
	"testing"

	"github.com/decker502/relicrun/pkg/game"
)

type fakeStore struct {
	settings *game.GameSettings
	saved    []int
	err      error
}

func (f *fakeStore) GetSettings() *game.GameSettings { return f.settings }

func (f *fakeStore) SetSelectedLevel(index, levelCount int) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, index)
	f.settings.SelectedLevel = index
	return nil
}

type fakeMusic struct {
	enabled bool
}

func (f *fakeMusic) SetMusicEnabled(enabled bool) { f.enabled = enabled }
func (f *fakeMusic) MusicEnabled() bool           { return f.enabled }

var testLevels = []string{"Level 1", "Level 2"}

// TestOptionsPanelModule_ShowHide 测试面板显示隐藏与关闭回调
func TestOptionsPanelModule_ShowHide(t *testing.T) {
	closed := 0
	panel := NewOptionsPanelModule(nil, nil, testLevels, 640, 480, func() { closed++ })

	if panel.IsVisible() {
		t.Error("Expected panel hidden initially")
	}
	panel.Hide()
	if closed != 0 {
		t.Error("Expected no close callback when already hidden")
	}

	panel.Show()
	if !panel.IsVisible() {
		t.Error("Expected panel visible after Show()")
	}

	// "确定"按钮
	panel.Buttons().Buttons[2].OnClick()
	if panel.IsVisible() {
		t.Error("Expected OK to hide the panel")
	}
	if closed != 1 {
		t.Errorf("Expected close callback once, got %d", closed)
	}
}

// TestOptionsPanelModule_ToggleMusic 测试音乐开关
func TestOptionsPanelModule_ToggleMusic(t *testing.T) {
	music := &fakeMusic{enabled: true}
	panel := NewOptionsPanelModule(nil, music, testLevels, 640, 480, nil)

	if panel.Buttons().Buttons[0].Label != "Music: On" {
		t.Errorf("Expected label 'Music: On', got %q", panel.Buttons().Buttons[0].Label)
	}

	panel.ToggleMusic()
	if music.enabled {
		t.Error("Expected music disabled after toggle")
	}
	if panel.Buttons().Buttons[0].Label != "Music: Off" {
		t.Errorf("Expected label 'Music: Off', got %q", panel.Buttons().Buttons[0].Label)
	}

	panel.ToggleMusic()
	if !music.enabled {
		t.Error("Expected music enabled after second toggle")
	}
}

// TestOptionsPanelModule_SelectLevelPersists 测试关卡选择写入设置
func TestOptionsPanelModule_SelectLevelPersists(t *testing.T) {
	store := &fakeStore{settings: &game.GameSettings{SelectedLevel: 1}}
	panel := NewOptionsPanelModule(store, nil, testLevels, 640, 480, nil)

	if panel.SelectedLevel() != 1 {
		t.Fatalf("Expected selection loaded from settings, got %d", panel.SelectedLevel())
	}

	if err := panel.CycleLevel(); err != nil {
		t.Fatalf("CycleLevel() error: %v", err)
	}
	if panel.SelectedLevel() != 0 {
		t.Errorf("Expected wrap to level 0, got %d", panel.SelectedLevel())
	}
	if len(store.saved) != 1 || store.saved[0] != 0 {
		t.Errorf("Expected level 0 saved, got %v", store.saved)
	}
	if panel.Buttons().Buttons[1].Label != "Level: Level 1" {
		t.Errorf("Expected level label updated, got %q", panel.Buttons().Buttons[1].Label)
	}
}

// TestOptionsPanelModule_SelectLevelErrors 测试越界和存储失败
func TestOptionsPanelModule_SelectLevelErrors(t *testing.T) {
	storeErr := errors.New("disk full")
	store := &fakeStore{settings: &game.GameSettings{}, err: storeErr}
	panel := NewOptionsPanelModule(store, nil, testLevels, 640, 480, nil)

	if err := panel.SelectLevel(5); err == nil {
		t.Error("Expected error for out-of-range level")
	}

	err := panel.SelectLevel(1)
	if !errors.Is(err, storeErr) {
		t.Errorf("Expected wrapped store error, got %v", err)
	}
	if panel.SelectedLevel() != 0 {
		t.Errorf("Expected selection unchanged on failure, got %d", panel.SelectedLevel())
	}
}

// TestOptionsPanelModule_StaleSelection 测试设置中的越界索引被忽略
func TestOptionsPanelModule_StaleSelection(t *testing.T) {
	store := &fakeStore{settings: &game.GameSettings{SelectedLevel: 7}}
	panel := NewOptionsPanelModule(store, nil, testLevels, 640, 480, nil)

	if panel.SelectedLevel() != 0 {
		t.Errorf("Expected stale selection reset to 0, got %d", panel.SelectedLevel())
	}
}
