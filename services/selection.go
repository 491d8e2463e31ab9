package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"property-search/models"
	"property-search/storage"
	"property-search/utils"
)

// SelectionManager owns one session's favorites, comparison set and view
// mode. Every mutation writes the changed value back to the store before it
// returns. When the store fails the manager keeps working in memory only.
type SelectionManager struct {
	mu     sync.Mutex
	store  storage.KeyValueStore
	logger *utils.Logger

	favorites  []int
	comparison []int
	viewMode   models.ViewMode
	degraded   bool
}

// NewSelectionManager loads state from store. Absent keys give empty sets and
// the grid view.
func NewSelectionManager(store storage.KeyValueStore, logger *utils.Logger) *SelectionManager {
	m := &SelectionManager{
		store:    store,
		logger:   logger,
		viewMode: models.ViewGrid,
	}

	m.favorites = m.loadIDs(storage.KeyFavorites)
	m.mergeSaved()
	m.comparison = m.loadIDs(storage.KeyComparison)
	if len(m.comparison) > models.MaxComparison {
		m.logger.Warn("[selection] Stored comparison set has %d ids, keeping the first %d",
			len(m.comparison), models.MaxComparison)
		m.comparison = m.comparison[:models.MaxComparison]
	}
	m.loadViewMode()

	return m
}

func (m *SelectionManager) loadIDs(key string) []int {
	raw, ok := m.read(key)
	if !ok {
		return nil
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		m.logger.Warn("[selection] Ignoring corrupt %s value %q: %v", key, raw, err)
		return nil
	}

	// drop duplicates, keep first occurrence
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// mergeSaved appends ids from the saved-properties list that are not yet
// favorites and persists the merged set.
func (m *SelectionManager) mergeSaved() {
	merged := 0
	for _, id := range m.loadIDs(storage.KeySavedProperties) {
		if indexOf(m.favorites, id) < 0 {
			m.favorites = append(m.favorites, id)
			merged++
		}
	}
	if merged > 0 {
		m.logger.Info("[selection] Merged %d saved properties into favorites", merged)
		m.writeIDs(storage.KeyFavorites, m.favorites)
	}
}

func (m *SelectionManager) loadViewMode() {
	raw, ok := m.read(storage.KeyViewType)
	if !ok {
		return
	}
	// pages write the bare string; accept a JSON-quoted one as well
	mode := models.ViewMode(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	if !mode.Valid() {
		m.logger.Warn("[selection] Ignoring unknown view mode %q", raw)
		return
	}
	m.viewMode = mode
}

func (m *SelectionManager) read(key string) ([]byte, bool) {
	if m.degraded {
		return nil, false
	}
	raw, ok, err := m.store.Get(key)
	if err != nil {
		m.degrade(fmt.Errorf("read %s: %w", key, err))
		return nil, false
	}
	return raw, ok
}

// write persists value under key. It returns a warning for the caller when
// the value stayed in memory only.
func (m *SelectionManager) write(key string, value []byte) string {
	if m.degraded {
		return models.ErrStorageUnavailable.Error()
	}
	if err := m.store.Set(key, value); err != nil {
		m.degrade(fmt.Errorf("write %s: %w", key, err))
		return models.ErrStorageUnavailable.Error()
	}
	return ""
}

func (m *SelectionManager) writeIDs(key string, ids []int) string {
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		// []int always marshals
		m.logger.Error("[selection] Encode %s: %v", key, err)
		return models.ErrStorageUnavailable.Error()
	}
	return m.write(key, raw)
}

func (m *SelectionManager) degrade(err error) {
	if !m.degraded {
		m.logger.Error("[selection] Storage failed, continuing in memory only: %v", err)
	}
	m.degraded = true
}

// ToggleFavorite flips id's membership in the favorites set.
func (m *SelectionManager) ToggleFavorite(id int) models.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := models.Outcome{Subject: models.SubjectFavorite, PropertyID: id}
	if i := indexOf(m.favorites, id); i >= 0 {
		m.favorites = remove(m.favorites, i)
		out.Kind = models.OutcomeRemoved
	} else {
		m.favorites = append(m.favorites, id)
		out.Kind = models.OutcomeAdded
	}
	out.Count = len(m.favorites)
	out.Warning = m.writeIDs(storage.KeyFavorites, m.favorites)

	m.logger.Debug("[selection] Favorite %d %s (%d total)", id, out.Kind, out.Count)
	return out
}

// ToggleComparison removes id if present, otherwise adds it while the set
// has room. A full set rejects the insert and is left unchanged.
func (m *SelectionManager) ToggleComparison(id int) models.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := models.Outcome{Subject: models.SubjectComparison, PropertyID: id}
	switch i := indexOf(m.comparison, id); {
	case i >= 0:
		m.comparison = remove(m.comparison, i)
		out.Kind = models.OutcomeRemoved
	case len(m.comparison) < models.MaxComparison:
		m.comparison = append(m.comparison, id)
		out.Kind = models.OutcomeAdded
	default:
		out.Kind = models.OutcomeRejected
		out.Reason = models.ReasonMaxReached
		out.Count = len(m.comparison)
		return out
	}
	out.Count = len(m.comparison)
	out.Warning = m.writeIDs(storage.KeyComparison, m.comparison)

	m.logger.Debug("[selection] Comparison %d %s (%d total)", id, out.Kind, out.Count)
	return out
}

// ClearComparison empties the comparison set.
func (m *SelectionManager) ClearComparison() models.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.comparison = nil
	return models.Outcome{
		Kind:    models.OutcomeRemoved,
		Subject: models.SubjectComparison,
		Warning: m.writeIDs(storage.KeyComparison, m.comparison),
	}
}

func (m *SelectionManager) IsFavorite(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return indexOf(m.favorites, id) >= 0
}

func (m *SelectionManager) IsInComparison(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return indexOf(m.comparison, id) >= 0
}

func (m *SelectionManager) ComparisonCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.comparison)
}

// Favorites returns the favorite ids in the order they were added.
func (m *SelectionManager) Favorites() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.favorites...)
}

// Comparison returns the compared ids in the order they were added.
func (m *SelectionManager) Comparison() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.comparison...)
}

// SetViewMode changes the layout preference. It returns ErrInvalidViewMode
// for an unknown mode, and ErrStorageUnavailable when the mode was applied
// but could not be persisted.
func (m *SelectionManager) SetViewMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%q: %w", mode, models.ErrInvalidViewMode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.viewMode = mode
	if warning := m.write(storage.KeyViewType, []byte(mode)); warning != "" {
		return models.ErrStorageUnavailable
	}
	return nil
}

func (m *SelectionManager) ViewMode() models.ViewMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewMode
}

// Degraded reports whether the manager lost its durable store.
func (m *SelectionManager) Degraded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.degraded
}

// Snapshot returns a copy of the whole selection state.
func (m *SelectionManager) Snapshot() models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.Snapshot{
		Favorites:  append([]int{}, m.favorites...),
		Comparison: append([]int{}, m.comparison...),
		ViewMode:   m.viewMode,
		Degraded:   m.degraded,
	}
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// remove deletes ids[i] into a fresh slice so earlier snapshots stay intact.
func remove(ids []int, i int) []int {
	out := make([]int, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}
