package game

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxRecentRounds 保留的最近回合记录数
const MaxRecentRounds = 10

// RoundRecord 单个回合的结果
type RoundRecord struct {
	Score          int       `yaml:"score"`          // 总分
	Hits           int       `yaml:"hits"`           // 普通撞击次数
	Bonuses        int       `yaml:"bonuses"`        // 第四次撞击奖励次数
	BumpersCleared int       `yaml:"bumpersCleared"` // 清除的弹珠柱数量
	Launches       int       `yaml:"launches"`       // 发射次数
	Seed           int64     `yaml:"seed"`           // 布局随机种子
	PlayedAt       time.Time `yaml:"playedAt"`       // 结束时间
}

// HighScoreData 高分存档
type HighScoreData struct {
	Best   RoundRecord   `yaml:"best"`   // 历史最高分回合
	Rounds []RoundRecord `yaml:"rounds"` // 最近的回合，最新的在最后
}

// 存储路径常量
const (
	scoresObject     = "scores"
	scoresProperty   = "history"
	screenshotObject = "screenshots"
)

// HighScoreManager 高分与截图管理器
//
// 职责：
//   - 记录回合结果并维护最高分
//   - 保存回合结束截图
//
// gdataManager 为 nil 时只在内存中记录，所有持久化操作静默成功。
type HighScoreManager struct {
	gdataManager *gdata.Manager
	data         *HighScoreData
}

// NewHighScoreManager 创建高分管理器并加载已有存档
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{
		gdataManager: gdataManager,
		data:         &HighScoreData{},
	}

	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: Failed to load scores: %v (starting fresh)", err)
	}

	return hm
}

// Load 从 gdata 加载高分存档
func (hm *HighScoreManager) Load() error {
	hm.data = &HighScoreData{}
	if hm.gdataManager == nil || !hm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	raw, err := hm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	var loaded HighScoreData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	hm.data = &loaded
	log.Printf("[HighScoreManager] Loaded %d rounds, best %d", len(loaded.Rounds), loaded.Best.Score)
	return nil
}

// Save 保存高分存档
func (hm *HighScoreManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(hm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	if err := hm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, raw); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// RecordRound 记录回合结果
//
// 最近回合列表只保留 MaxRecentRounds 条。
//
// 参数：
//   - record: 回合结果（PlayedAt 为零值时使用当前时间）
//
// 返回：
//   - bool: 是否刷新了最高分
//   - error: 持久化失败时返回错误（内存中的记录仍然更新）
func (hm *HighScoreManager) RecordRound(record RoundRecord) (bool, error) {
	if record.PlayedAt.IsZero() {
		record.PlayedAt = time.Now()
	}

	hm.data.Rounds = append(hm.data.Rounds, record)
	if n := len(hm.data.Rounds); n > MaxRecentRounds {
		hm.data.Rounds = append([]RoundRecord(nil), hm.data.Rounds[n-MaxRecentRounds:]...)
	}

	newBest := record.Score > hm.data.Best.Score
	if newBest {
		hm.data.Best = record
		log.Printf("[HighScoreManager] New best score: %d", record.Score)
	}

	if err := hm.Save(); err != nil {
		return newBest, err
	}
	return newBest, nil
}

// Best 返回历史最高分回合
func (hm *HighScoreManager) Best() RoundRecord {
	return hm.data.Best
}

// Rounds 返回最近的回合记录
func (hm *HighScoreManager) Rounds() []RoundRecord {
	return hm.data.Rounds
}

// ScreenshotKey 返回回合截图的存储属性名
func ScreenshotKey(score int) string {
	return "plinko_" + strconv.Itoa(score)
}

// SaveScreenshot 保存回合结束截图（PNG 数据）
//
// 返回：
//   - string: 存储属性名
//   - error: 保存失败时返回错误
func (hm *HighScoreManager) SaveScreenshot(score int, png []byte) (string, error) {
	key := ScreenshotKey(score)
	if hm.gdataManager == nil {
		return key, nil
	}

	if err := hm.gdataManager.SaveObjectProp(screenshotObject, key, png); err != nil {
		return key, fmt.Errorf("failed to save screenshot %s: %w", key, err)
	}

	log.Printf("[HighScoreManager] Screenshot saved: %s (%d bytes)", key, len(png))
	return key, nil
}

// LoadScreenshot 读取已保存的截图
func (hm *HighScoreManager) LoadScreenshot(score int) ([]byte, error) {
	if hm.gdataManager == nil {
		return nil, fmt.Errorf("screenshot storage unavailable")
	}
	return hm.gdataManager.LoadObjectProp(screenshotObject, ScreenshotKey(score))
}
