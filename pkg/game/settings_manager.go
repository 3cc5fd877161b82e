package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// GameSettings 玩家偏好，跨关卡、跨进程保留
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// SettingsManager 偏好设置的读写
//
// 修改只作用于内存，调用 Save 才会落盘。
// gdataManager 为 nil 时所有持久化操作都是无操作。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// NewSettingsManager 创建设置管理器并读取已保存的设置
// 读取失败只记录警告，使用默认值继续运行
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取设置；不存在或损坏时回退到默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}

	loaded := DefaultSettings()
	found, err := loadYAMLProp(sm.gdataManager, settingsObject, settingsProperty, loaded)
	if err != nil || !found {
		return err
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded settings (sound=%v, volume=%.2f, fullscreen=%v)",
		loaded.SoundEnabled, loaded.SoundVolume, loaded.Fullscreen)
	return nil
}

// Save 持久化当前设置
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	return saveYAMLProp(sm.gdataManager, settingsObject, settingsProperty, sm.settings)
}

// GetSettings 返回当前设置（可直接读取，修改请走 Set 方法）
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换音效开关
//
// 返回：
//   - bool: 切换后的状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	return max(0, min(1, volume))
}
