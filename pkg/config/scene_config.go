package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SceneID 场景标识（封闭枚举）
// 场景之间的流转通过 SceneTable 查表完成，不再比较场景名字符串
type SceneID int

const (
	SceneMainMenu SceneID = iota
	SceneLevel1
	SceneLevel2
	SceneVictory
)

var sceneKeys = map[SceneID]string{
	SceneMainMenu: "mainMenu",
	SceneLevel1:   "level1",
	SceneLevel2:   "level2",
	SceneVictory:  "victory",
}

// String 返回场景在配置文件中使用的键名
func (id SceneID) String() string {
	if key, ok := sceneKeys[id]; ok {
		return key
	}
	return fmt.Sprintf("SceneID(%d)", int(id))
}

// ParseSceneID 将配置键名解析为 SceneID
func ParseSceneID(key string) (SceneID, error) {
	for id, k := range sceneKeys {
		if k == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown scene id %q", key)
}

// UnmarshalYAML 实现 yaml.Unmarshaler，允许在 YAML 中直接写场景键名
func (id *SceneID) UnmarshalYAML(value *yaml.Node) error {
	var key string
	if err := value.Decode(&key); err != nil {
		return err
	}
	parsed, err := ParseSceneID(key)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (id SceneID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

// SceneEntry 单个场景的配置
type SceneEntry struct {
	ID    SceneID `yaml:"id"`
	Name  string  `yaml:"name"`  // 场景显示名/字面名称，如 "01_Level1"
	Level string  `yaml:"level"` // 关卡配置文件路径（仅关卡场景）
	Music string  `yaml:"music"` // 进入场景时播放的音乐提示名，空表示不切换

	// 胜利/失败后的目标场景，由 applySceneDefaults 填充默认值
	OnWin  *SceneID `yaml:"onWin"`
	OnFail *SceneID `yaml:"onFail"`

	// Index 场景在构建列表中的序号，由加载顺序决定
	Index int `yaml:"-"`
}

// IsLevel 该场景是否为可游玩关卡
func (e SceneEntry) IsLevel() bool {
	return e.Level != ""
}

// NextOnWin 返回胜利后的目标场景
func (e SceneEntry) NextOnWin() SceneID {
	if e.OnWin == nil {
		return SceneMainMenu
	}
	return *e.OnWin
}

// NextOnFail 返回失败后的目标场景
func (e SceneEntry) NextOnFail() SceneID {
	if e.OnFail == nil {
		return SceneMainMenu
	}
	return *e.OnFail
}

// SceneTable 场景查找表：SceneID -> {名称, 序号, 胜利后, 失败后, 音乐}
type SceneTable struct {
	entries []SceneEntry
	byID    map[SceneID]int
}

type sceneTableFile struct {
	Scenes []SceneEntry `yaml:"scenes"`
}

// ParseSceneTable 从 YAML 数据解析场景表
//
// 参数：
//   - data: YAML 内容
//   - source: 数据来源（用于错误信息）
func ParseSceneTable(data []byte, source string) (*SceneTable, error) {
	var file sceneTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene table YAML from %s: %w", source, err)
	}

	table, err := NewSceneTable(file.Scenes)
	if err != nil {
		return nil, fmt.Errorf("invalid scene table in %s: %w", source, err)
	}
	return table, nil
}

// NewSceneTable 由场景列表构建查找表，列表顺序即场景序号
func NewSceneTable(entries []SceneEntry) (*SceneTable, error) {
	table := &SceneTable{
		entries: make([]SceneEntry, 0, len(entries)),
		byID:    make(map[SceneID]int, len(entries)),
	}

	for i, entry := range entries {
		if _, dup := table.byID[entry.ID]; dup {
			return nil, fmt.Errorf("scene %s declared twice", entry.ID)
		}
		applySceneDefaults(&entry)
		entry.Index = i
		table.byID[entry.ID] = i
		table.entries = append(table.entries, entry)
	}

	if _, ok := table.byID[SceneMainMenu]; !ok {
		return nil, fmt.Errorf("scene %s is required", SceneMainMenu)
	}
	return table, nil
}

// applySceneDefaults 为缺失的可选字段设置默认值
func applySceneDefaults(entry *SceneEntry) {
	if entry.Name == "" {
		entry.Name = entry.ID.String()
	}
	// 未声明流转目标的场景一律回到主菜单
	if entry.OnWin == nil {
		menu := SceneMainMenu
		entry.OnWin = &menu
	}
	if entry.OnFail == nil {
		menu := SceneMainMenu
		entry.OnFail = &menu
	}
}

// Get 按 ID 查找场景
func (t *SceneTable) Get(id SceneID) (SceneEntry, bool) {
	i, ok := t.byID[id]
	if !ok {
		return SceneEntry{}, false
	}
	return t.entries[i], true
}

// ByIndex 按序号查找场景
func (t *SceneTable) ByIndex(index int) (SceneEntry, bool) {
	if index < 0 || index >= len(t.entries) {
		return SceneEntry{}, false
	}
	return t.entries[index], true
}

// Len 返回场景数量
func (t *SceneTable) Len() int {
	return len(t.entries)
}

// Levels 返回所有关卡场景（按序号排列），供选项菜单的关卡选择使用
func (t *SceneTable) Levels() []SceneEntry {
	levels := make([]SceneEntry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.IsLevel() {
			levels = append(levels, e)
		}
	}
	return levels
}
