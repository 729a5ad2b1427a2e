package input

import (
	"ai-anywhere/internal/domain"

	"github.com/google/uuid"
)

// CustomTaskService interface - Input port (use case)
type CustomTaskService interface {
	List() ([]domain.CustomTask, error)
	Get(id uuid.UUID) (*domain.CustomTask, error)
	Create(task domain.CustomTask) (*domain.CustomTask, error)
	Update(id uuid.UUID, task domain.CustomTask) (*domain.CustomTask, error)
	Delete(id uuid.UUID) error
	Export() ([]byte, error)
	// Import merges tasks by name and returns how many were stored.
	Import(data []byte) (int, error)
}
