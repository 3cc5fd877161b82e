package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// 存储路径常量
const (
	prefsObject = "prefs"
	// PlayerScoreKey 持久化分数使用的固定键名
	PlayerScoreKey = "PlayerScore"
)

// scoreRecord 分数的序列化格式
type scoreRecord struct {
	Score int `yaml:"score"`
}

// ScoreStore 分数持久化存储
// 在平台键值存储中以固定键保存一个整数，跨进程重启保留
//
// gdataManager 为 nil 时进入降级模式：数据只保存在内存中
type ScoreStore struct {
	gdataManager *gdata.Manager
	memory       map[string]int
}

// NewScoreStore 创建分数存储
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewScoreStore(gdataManager *gdata.Manager) *ScoreStore {
	return &ScoreStore{
		gdataManager: gdataManager,
		memory:       make(map[string]int),
	}
}

// Save 保存分数
func (s *ScoreStore) Save(score int) error {
	if s.gdataManager == nil {
		s.memory[PlayerScoreKey] = score
		return nil
	}
	return saveYAMLProp(s.gdataManager, prefsObject, PlayerScoreKey, &scoreRecord{Score: score})
}

// Load 读取分数
//
// 键不存在时返回 0，不视为错误
func (s *ScoreStore) Load() (int, error) {
	if s.gdataManager == nil {
		return s.memory[PlayerScoreKey], nil
	}

	var record scoreRecord
	if _, err := loadYAMLProp(s.gdataManager, prefsObject, PlayerScoreKey, &record); err != nil {
		return 0, err
	}
	return record.Score, nil
}

// Delete 删除已保存的分数
// 删除后 Load 返回 0
func (s *ScoreStore) Delete() error {
	if s.gdataManager == nil {
		delete(s.memory, PlayerScoreKey)
		return nil
	}

	if !s.gdataManager.ObjectPropExists(prefsObject, PlayerScoreKey) {
		return nil
	}
	if err := s.gdataManager.DeleteObjectProp(prefsObject, PlayerScoreKey); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}
	log.Printf("[ScoreStore] Deleted key %s", PlayerScoreKey)
	return nil
}
