package modules

import "testing"

type fakeHUDSource struct {
	time     string
	progress string
}

func (f *fakeHUDSource) FormattedTimeRemaining() string { return f.time }
func (f *fakeHUDSource) ObjectiveProgress() string      { return f.progress }

// TestHUDModuleReadsLiveValues 测试 HUD 每次 Update 拉取最新数值
func TestHUDModuleReadsLiveValues(t *testing.T) {
	source := &fakeHUDSource{time: "02:00", progress: "0/5"}
	hud := NewHUDModule(source)

	if hud.TimeText() != "02:00" || hud.ProgressText() != "0/5" {
		t.Fatalf("Expected initial values, got %q %q", hud.TimeText(), hud.ProgressText())
	}

	source.time = "01:59"
	source.progress = "1/5"
	hud.Update()

	if hud.TimeText() != "01:59" {
		t.Errorf("Expected time 01:59, got %q", hud.TimeText())
	}
	if hud.ProgressText() != "1/5" {
		t.Errorf("Expected progress 1/5, got %q", hud.ProgressText())
	}
}

// TestHUDModuleNilSource 测试没有数据源时显示占位符
func TestHUDModuleNilSource(t *testing.T) {
	hud := NewHUDModule(nil)
	if hud.TimeText() != "--:--" {
		t.Errorf("Expected placeholder time, got %q", hud.TimeText())
	}
}
