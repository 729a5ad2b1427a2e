package memory

import (
	"strings"
	"sync"
	"time"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
)

var _ output.HistoryRepository = (*HistoryStore)(nil)

// HistoryStore struct - Output adapter keeping the history in memory, newest first
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates an empty in-memory history
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Create prepends an entry
func (m *HistoryStore) Create(entry *domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]domain.HistoryEntry{*entry}, m.entries...)
	return nil
}

// List filters by search text and pages the result
func (m *HistoryStore) List(query domain.HistoryQuery) ([]domain.HistoryEntry, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keyword := strings.ToLower(strings.TrimSpace(query.Search))
	matched := []domain.HistoryEntry{}
	for _, e := range m.entries {
		if keyword == "" || matches(e, keyword) {
			matched = append(matched, e)
		}
	}

	total := int64(len(matched))
	start := min(max(query.Offset, 0), len(matched))
	end := len(matched)
	if query.Limit > 0 {
		end = min(start+query.Limit, end)
	}
	return matched[start:end], total, nil
}

func matches(e domain.HistoryEntry, keyword string) bool {
	if strings.Contains(strings.ToLower(e.PromptText), keyword) {
		return true
	}
	return e.ResponseText != nil && strings.Contains(strings.ToLower(*e.ResponseText), keyword)
}

// Delete removes an entry by id and returns it
func (m *HistoryStore) Delete(id uuid.UUID) (*domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return &e, nil
		}
	}
	return nil, domain.ErrHistoryEntryNotFound
}

// Clear removes every entry
func (m *HistoryStore) Clear() ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := m.entries
	m.entries = nil
	return removed, nil
}

// TrimTo drops everything past the newest limit entries
func (m *HistoryStore) TrimTo(limit int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit < 0 || len(m.entries) <= limit {
		return nil, nil
	}
	removed := append([]domain.HistoryEntry(nil), m.entries[limit:]...)
	m.entries = m.entries[:limit:limit]
	return removed, nil
}
