package services

import (
	"sync"

	"property-search/storage"
	"property-search/utils"
)

// SessionRegistry hands out one SelectionManager per session id. Each
// session's keys are namespaced in the shared store.
type SessionRegistry struct {
	mu       sync.Mutex
	store    storage.KeyValueStore
	logger   *utils.Logger
	managers map[string]*SelectionManager
}

func NewSessionRegistry(store storage.KeyValueStore, logger *utils.Logger) *SessionRegistry {
	return &SessionRegistry{
		store:    store,
		logger:   logger,
		managers: make(map[string]*SelectionManager),
	}
}

// Get returns the session's manager, loading it from storage on first use.
func (r *SessionRegistry) Get(sessionID string) *SelectionManager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[sessionID]; ok {
		return m
	}
	m := NewSelectionManager(storage.NewPrefixStore(r.store, sessionID), r.logger)
	r.managers[sessionID] = m
	r.logger.Debug("[session] Loaded selection state for session %s", sessionID)
	return m
}

// Len returns the number of sessions loaded so far.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}
