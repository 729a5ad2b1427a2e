package output

import (
	"ai-anywhere/internal/domain"

	"github.com/google/uuid"
)

// CustomTaskRepository interface - Output port
type CustomTaskRepository interface {
	List() ([]domain.CustomTask, error)
	// Get returns domain.ErrCustomTaskNotFound when the id is unknown.
	Get(id uuid.UUID) (*domain.CustomTask, error)
	FindByName(name string) (*domain.CustomTask, error)
	Create(task *domain.CustomTask) error
	Save(task *domain.CustomTask) error
	Delete(id uuid.UUID) error
}
