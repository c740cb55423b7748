package utils

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// OpenStorage 打开应用的跨平台存储（设置文件）
// 先确保平台存储目录存在，再交给 gdata 管理
func OpenStorage(appName string) (*gdata.Manager, error) {
	if appName == "" {
		return nil, fmt.Errorf("open storage: app name cannot be empty")
	}
	if err := EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open storage for %s: %w", appName, err)
	}
	return manager, nil
}
