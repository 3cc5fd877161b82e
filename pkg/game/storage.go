package game

import (
	"fmt"
	"log"

	"github.com/decker502/invaders/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "decker502_invaders"

// OpenStorage 打开 gdata 跨平台存储
//
// 初始化失败不是致命错误：返回 nil，调用方进入降级模式（仅内存存储）
//
// 参数：
//   - appName: 应用名，决定存储目录
//
// 返回：
//   - *gdata.Manager: 存储管理器，失败时为 nil
func OpenStorage(appName string) *gdata.Manager {
	// Android 上 gdata 不会预先创建存储目录
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}
	if dir := utils.GetStoragePath(); dir != "" {
		log.Printf("[Storage] Using app directory %s", dir)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: Failed to open gdata storage: %v (running without persistence)", err)
		return nil
	}
	log.Printf("[Storage] gdata storage opened for %s", appName)
	return manager
}

// loadYAMLProp 读取 YAML 编码的对象属性到 out
//
// 返回：
//   - found: 属性是否存在；不存在时 out 保持不变
//   - err: 读取或解码失败
func loadYAMLProp(m *gdata.Manager, object, prop string, out any) (found bool, err error) {
	if !m.ObjectPropExists(object, prop) {
		return false, nil
	}
	data, err := m.LoadObjectProp(object, prop)
	if err != nil {
		return true, fmt.Errorf("load %s/%s: %w", object, prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("decode %s/%s: %w", object, prop, err)
	}
	return true, nil
}

// saveYAMLProp 把 v 编码为 YAML 写入对象属性
func saveYAMLProp(m *gdata.Manager, object, prop string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", object, prop, err)
	}
	if err := m.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", object, prop, err)
	}
	return nil
}
