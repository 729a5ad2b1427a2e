package input

import (
	"ai-anywhere/internal/domain"

	"github.com/google/uuid"
)

// HistoryService interface - Input port (use case)
type HistoryService interface {
	Record(request domain.OperationRequest, result domain.OperationResult) (*domain.HistoryEntry, error)
	List(query domain.HistoryQuery) ([]domain.HistoryEntry, int64, error)
	Delete(id uuid.UUID) error
	Clear() error
	// CleanupMedia removes media older than the configured retention.
	CleanupMedia() (int, error)
}
