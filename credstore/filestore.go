package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const storeFileName = "credentials.json"

// FileStore persists credentials as a single JSON document under the
// configured data folder. Every mutation rewrites the file so that a
// restarted console sees exactly what the previous run wrote.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

var _ Repo = (*FileStore)(nil)

// NewFileStore loads (or creates) the credential file in dataFolder.
func NewFileStore(dataFolder string) (*FileStore, error) {
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, err
	}

	s := &FileStore{
		path:   filepath.Join(dataFolder, storeFileName),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.values[key]
	return value, exists
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	s.flush()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	s.flush()
}

// flush writes the current map to disk. Callers hold the write lock.
// Local writes are treated as infallible by the rest of the console, so
// failures are logged rather than propagated.
func (s *FileStore) flush() {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		log.Err(err).Msg("Failed to encode credential store")
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Err(err).Str("path", s.path).Msg("Failed to write credential store")
	}
}
