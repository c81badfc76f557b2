package flowrepo

import (
	"errors"
	"sync"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface
type InMemoryRepo struct {
	mu       sync.Mutex
	states   map[string]*FlowState
	consumed map[string]struct{}
}

// NewInMemoryRepo creates a new in-memory flow state repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		states:   make(map[string]*FlowState),
		consumed: make(map[string]struct{}),
	}
}

// Upsert stores or updates a flow state
func (r *InMemoryRepo) Upsert(state string, flowState *FlowState) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if flowState == nil {
		return errors.New("flowState cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Create a copy to prevent external modifications
	r.states[state] = &FlowState{
		Flow:      flowState.Flow,
		ReturnURL: flowState.ReturnURL,
		CreatedAt: flowState.CreatedAt,
	}

	return nil
}

// Get retrieves a flow state by state parameter
func (r *InMemoryRepo) Get(state string) (*FlowState, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	flowState, exists := r.states[state]
	if !exists {
		return nil, errors.New("state not found")
	}

	return &FlowState{
		Flow:      flowState.Flow,
		ReturnURL: flowState.ReturnURL,
		CreatedAt: flowState.CreatedAt,
	}, nil
}

// Delete removes a flow state
func (r *InMemoryRepo) Delete(state string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, state)
	return nil
}

// ConsumeCode marks an authorization code as processed. The first caller
// gets true; every later caller for the same code gets false. Equivalent
// to a compare-and-swap on the single-threaded flow a browser drives.
func (r *InMemoryRepo) ConsumeCode(code string) bool {
	if code == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.consumed[code]; exists {
		return false
	}
	r.consumed[code] = struct{}{}
	return true
}
