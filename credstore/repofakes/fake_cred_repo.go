package repofakes

import (
	"sync"

	"github.com/complyatlas/console/credstore"
)

// FakeCredRepo is a thread-safe in-memory implementation of credstore.Repo
type FakeCredRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ credstore.Repo = (*FakeCredRepo)(nil)

func NewFakeCredRepo() *FakeCredRepo {
	return &FakeCredRepo{values: make(map[string]string)}
}

func (r *FakeCredRepo) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.values[key]
	return value, exists
}

func (r *FakeCredRepo) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
}

func (r *FakeCredRepo) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
}
