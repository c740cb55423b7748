// Package embedded 提供游戏资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// 数据文件的 embed.FS 变量声明在项目根目录（embed.go）。
// 音频资源体积较大，不嵌入，由启动时传入的磁盘文件系统提供。
//
// 路径以 "data/" 开头的从数据文件系统读取，以 "assets/" 开头的从资源文件系统读取。
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数:
//   - assets: 以 assets 目录为根的文件系统（通常是 os.DirFS）；为 nil 时所有资源都不存在
//   - data: "data/" 前缀的文件系统（通常是嵌入的 embed.FS）
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择文件系统，并返回标准化后的路径
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠，移除可能的 "./" 前缀
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	var fsys fs.FS
	switch {
	case path == "assets":
		fsys, path = assetsFS, "."
	case strings.HasPrefix(path, "assets/"):
		// 资源文件系统以 assets 目录本身为根
		fsys, path = assetsFS, strings.TrimPrefix(path, "assets/")
	case strings.HasPrefix(path, "data/") || path == "data":
		fsys = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}
	if fsys == nil {
		return nil, "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return fsys, path, nil
}

// Open 打开文件
func Open(path string) (fs.File, error) {
	fsys, path, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(path)
}

// ReadFile 读取文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, path, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配文件
func Glob(pattern string) ([]string, error) {
	fsys, pattern, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, pattern)
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	fsys, path, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, path)
}

// Sub 返回指定目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	fsys, dir, err := resolve(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, dir)
}

// Stat 获取文件信息
func Stat(path string) (fs.FileInfo, error) {
	fsys, path, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(fsys, path)
}
