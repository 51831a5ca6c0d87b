package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	ShowGrid   bool `yaml:"showGrid"`   // 是否显示空间哈希网格
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		ShowGrid:     false,
		Fullscreen:   false,
	}
}

// SettingsManager 保存在 gdata 中的玩家偏好
//
// 每次通过 Toggle/Set 修改都会立即写回存储。
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// gdata 中的位置（key 不能包含点号）
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并读取已保存的设置
//
// gdataManager 为 nil 时只在内存中保存设置；读取失败时使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 读取设置
//
// 没有存储或尚无存档时使用默认设置；存档损坏时同样回退到默认设置并返回错误。
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded, err := decodeSettings(data)
	if err != nil {
		return err
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded: volume=%.2f sound=%v grid=%v fullscreen=%v",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.ShowGrid, loaded.Fullscreen)
	return nil
}

// decodeSettings 在默认值之上解码，缺少的字段保持默认
func decodeSettings(data []byte) (*GameSettings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	settings.SoundVolume = clampVolume(settings.SoundVolume)
	return settings, nil
}

// Save 写入 gdata，没有存储时什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量（截断到 [0, 1]，不自动保存）
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// ToggleSound 切换音效开关，返回切换后的状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.update(func(s *GameSettings) { s.SoundEnabled = !s.SoundEnabled })
	return sm.settings.SoundEnabled
}

// ToggleGrid 切换空间哈希网格叠加层，返回切换后的状态
func (sm *SettingsManager) ToggleGrid() bool {
	sm.update(func(s *GameSettings) { s.ShowGrid = !s.ShowGrid })
	return sm.settings.ShowGrid
}

// SetFullscreen 记录全屏状态
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.update(func(s *GameSettings) { s.Fullscreen = enabled })
}

// update 修改设置并立即保存，保存失败只记录日志
func (sm *SettingsManager) update(mutate func(*GameSettings)) {
	mutate(sm.settings)
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

func clampVolume(volume float64) float64 {
	return min(max(volume, 0), 1)
}
