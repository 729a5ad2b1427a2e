package output

import (
	"ai-anywhere/internal/domain"

	"github.com/google/uuid"
)

// HistoryRepository interface - Output port
type HistoryRepository interface {
	Create(entry *domain.HistoryEntry) error
	// List returns entries newest first together with the total match count.
	// Search matches prompt or response text case-insensitively.
	List(query domain.HistoryQuery) ([]domain.HistoryEntry, int64, error)
	// Delete removes an entry and returns it; domain.ErrHistoryEntryNotFound when absent.
	Delete(id uuid.UUID) (*domain.HistoryEntry, error)
	// Clear removes every entry and returns them.
	Clear() ([]domain.HistoryEntry, error)
	// TrimTo keeps the newest limit entries and returns the removed ones.
	TrimTo(limit int) ([]domain.HistoryEntry, error)
}
