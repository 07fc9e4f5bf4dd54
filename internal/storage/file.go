package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileMedium 文件介质，每个键对应数据目录下的一个 JSON 文件
type FileMedium struct {
	mu  sync.RWMutex
	dir string
}

// NewFileMedium 创建文件介质并确保数据目录存在
func NewFileMedium(dir string) (*FileMedium, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileMedium{dir: dir}, nil
}

// path 键对应的文件路径
func (m *FileMedium) path(key string) string {
	return filepath.Join(m.dir, key+".json")
}

func (m *FileMedium) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, err := os.ReadFile(m.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (m *FileMedium) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 先写临时文件再改名，避免写入中断留下半个快照
	tmp := m.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, m.path(key))
}

func (m *FileMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *FileMedium) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}
