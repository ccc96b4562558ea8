package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"taruvae/pkg/logger"
)

// Mirror is the on-disk cache of the last known good state of each
// collection. It is best-effort: a failed save is logged and dropped, a
// missing or corrupt file reads as "no data", never as an error.
type Mirror struct {
	dir string
	mu  sync.Mutex
}

func NewMirror(dir string) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Mirror{dir: dir}, nil
}

func (m *Mirror) file(key string) string {
	return filepath.Join(m.dir, key+".json")
}

func (m *Mirror) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("mirror: failed to serialize %s: %v", key, err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.WriteFile(m.file(key), data, 0o644); err != nil {
		logger.Warn("mirror: failed to write %s: %v", key, err)
	}
}

// Load reads the cached value into dest. It reports whether anything usable
// was found; dest is left untouched otherwise.
func (m *Mirror) Load(key string, dest interface{}) bool {
	m.mu.Lock()
	data, err := os.ReadFile(m.file(key))
	m.mu.Unlock()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("mirror: corrupt cache for %s, treating as empty: %v", key, err)
		return false
	}
	return true
}
