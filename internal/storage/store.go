package storage

import (
	"encoding/json"
	"errors"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/config"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
)

// 持久化键名
const (
	KeyUsers       = "users"
	KeyProjects    = "projects"
	KeyReviews     = "reviews"
	KeyMessages    = "messages"
	KeyTreasury    = "treasury"
	KeyCurrentUser = "current-user"
	KeyUserCache   = "user-cache"
)

// Load 读取键对应的快照，失败时记录警告并返回默认值，绝不向调用方抛错。
// 日期字段以 RFC3339 字符串持久化，经 time.Time 反序列化自动还原。
func Load[T any](m Medium, key string, defaultValue T) T {
	raw, err := m.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Warn("Failed to load %s from storage: %v", key, err)
		}
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("Failed to load %s from storage: %v", key, err)
		return defaultValue
	}
	return value
}

// Save 将完整快照序列化写入键（非增量），失败时记录警告并返回错误供布尔化上报
func Save[T any](m Medium, key string, data T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Warn("Failed to save %s to storage: %v", key, err)
		return err
	}
	if err := m.Set(key, raw); err != nil {
		logger.Warn("Failed to save %s to storage: %v", key, err)
		return err
	}
	return nil
}

// NewMedium 按配置创建持久化介质
func NewMedium(cfg config.StorageConfig) (Medium, error) {
	switch cfg.Backend {
	case "postgres":
		return NewGormMedium(cfg.Postgres)
	case "file", "":
		return NewFileMedium(cfg.DataDir)
	case "memory":
		return NewMemoryMedium(), nil
	default:
		return nil, errors.New("storage: unknown backend " + cfg.Backend)
	}
}
