package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure CustomTaskStore implements CustomTaskRepository interface
var _ output.CustomTaskRepository = (*CustomTaskStore)(nil)

// CustomTaskStore struct - Output adapter for in-memory custom task storage.
// Uses sync.Map keyed by task id; stored values are copies so callers
// cannot mutate the store through returned pointers.
type CustomTaskStore struct {
	tasks sync.Map
}

// NewCustomTaskStore creates an empty in-memory task store
func NewCustomTaskStore() *CustomTaskStore {
	return &CustomTaskStore{}
}

// List returns every task ordered by name
func (m *CustomTaskStore) List() ([]domain.CustomTask, error) {
	tasks := []domain.CustomTask{}
	m.tasks.Range(func(_, value any) bool {
		if task, ok := value.(domain.CustomTask); ok {
			tasks = append(tasks, task)
		}
		return true
	})
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Name < tasks[j].Name
	})
	return tasks, nil
}

// Get returns a copy of the task with the given id
func (m *CustomTaskStore) Get(id uuid.UUID) (*domain.CustomTask, error) {
	value, exists := m.tasks.Load(id)
	if !exists {
		return nil, domain.ErrCustomTaskNotFound
	}
	task := value.(domain.CustomTask)
	return &task, nil
}

// FindByName returns the task whose name matches case-insensitively
func (m *CustomTaskStore) FindByName(name string) (*domain.CustomTask, error) {
	var found *domain.CustomTask
	name = strings.TrimSpace(name)
	m.tasks.Range(func(_, value any) bool {
		task := value.(domain.CustomTask)
		if strings.EqualFold(task.Name, name) {
			found = &task
			return false
		}
		return true
	})
	if found == nil {
		return nil, domain.ErrCustomTaskNotFound
	}
	return found, nil
}

// Create stores a new task, assigning an id and timestamps
func (m *CustomTaskStore) Create(task *domain.CustomTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	m.tasks.Store(task.ID, *task)
	return nil
}

// Save replaces an existing task
func (m *CustomTaskStore) Save(task *domain.CustomTask) error {
	if _, exists := m.tasks.Load(task.ID); !exists {
		return domain.ErrCustomTaskNotFound
	}
	task.UpdatedAt = time.Now()
	m.tasks.Store(task.ID, *task)
	return nil
}

// Delete removes a task by id
func (m *CustomTaskStore) Delete(id uuid.UUID) error {
	if _, loaded := m.tasks.LoadAndDelete(id); !loaded {
		return domain.ErrCustomTaskNotFound
	}
	return nil
}
