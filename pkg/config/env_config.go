package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig 应用启动配置，可由环境变量覆盖
type AppConfig struct {
	// Verbose 启用详细日志输出
	Verbose bool `env:"RELICRUN_VERBOSE"`
	// StartScene 启动时直接进入的场景键名（如 "level2"），为空则从主菜单开始
	StartScene string `env:"RELICRUN_SCENE"`
	// AssetsDir 音频等外部资源目录
	AssetsDir string `env:"RELICRUN_ASSETS_DIR" envDefault:"assets"`
	// AppName gdata 存储使用的应用名
	AppName string `env:"RELICRUN_APP_NAME" envDefault:"relicrun"`
}

// LoadAppConfig 从环境变量加载应用配置
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
