package storage

import (
	"errors"
	"sync"
)

// ErrKeyNotFound 介质中不存在该键
var ErrKeyNotFound = errors.New("storage: key not found")

// Medium 键值持久化介质，值为 JSON 编码的完整快照
type Medium interface {
	// Get 读取键对应的原始数据，不存在时返回 ErrKeyNotFound
	Get(key string) ([]byte, error)
	// Set 整体覆盖写入（last-write-wins）
	Set(key string, value []byte) error
	// Delete 删除键，键不存在不视为错误
	Delete(key string) error
	// Keys 列出已存在的键
	Keys() ([]string, error)
}

// MemoryMedium 内存介质，用于测试与非持久运行
type MemoryMedium struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryMedium 创建内存介质
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string][]byte)}
}

func (m *MemoryMedium) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// 返回副本，避免调用方修改内部状态
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryMedium) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryMedium) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}
