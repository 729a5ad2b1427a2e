package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CustomTaskService struct - Application service for user-authored operations
type CustomTaskService struct {
	repo output.CustomTaskRepository
}

// NewCustomTaskService func - Creates new custom task service
func NewCustomTaskService(repo output.CustomTaskRepository) *CustomTaskService {
	return &CustomTaskService{
		repo: repo,
	}
}

// List func - Use case: all custom tasks
func (s *CustomTaskService) List() ([]domain.CustomTask, error) {
	tasks, err := s.repo.List()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return tasks, nil
}

// Get func - Use case: one custom task
func (s *CustomTaskService) Get(id uuid.UUID) (*domain.CustomTask, error) {
	return s.repo.Get(id)
}

// Create func - Use case: validate and store a new task
func (s *CustomTaskService) Create(task domain.CustomTask) (*domain.CustomTask, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}
	task.ID = uuid.Nil
	task.Name = strings.TrimSpace(task.Name)
	if err := s.repo.Create(&task); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	logrus.Infof("Custom task created: %s (%s)", task.Name, task.ID)
	return &task, nil
}

// Update func - Use case: replace a task's definition, keeping id and creation time
func (s *CustomTaskService) Update(id uuid.UUID, task domain.CustomTask) (*domain.CustomTask, error) {
	existing, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(task.Name)
	existing.Description = task.Description
	existing.SystemPrompt = task.SystemPrompt
	existing.Options = task.Options
	existing.UpdatedAt = time.Now()
	if err := s.repo.Save(existing); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return existing, nil
}

// Delete func - Use case: remove a task
func (s *CustomTaskService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	logrus.Infof("Custom task deleted: %s", id)
	return nil
}

// Export func - Use case: all tasks as indented JSON
func (s *CustomTaskService) Export() ([]byte, error) {
	tasks, err := s.List()
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.CustomTask{}
	}
	return json.MarshalIndent(tasks, "", "  ")
}

// Import func - Use case: merge exported tasks by name.
// Invalid tasks are skipped; a task whose name already exists replaces
// that task's definition.
func (s *CustomTaskService) Import(data []byte) (int, error) {
	var tasks []domain.CustomTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return 0, fmt.Errorf("%w: invalid task file: %v", domain.ErrValidation, err)
	}

	imported := 0
	for i := range tasks {
		task := tasks[i]
		if err := task.Validate(); err != nil {
			logrus.Warnf("Skipping custom task %q: %v", task.Name, err)
			continue
		}

		existing, err := s.repo.FindByName(strings.TrimSpace(task.Name))
		switch {
		case err == nil:
			_, err = s.Update(existing.ID, task)
		case errors.Is(err, domain.ErrCustomTaskNotFound):
			_, err = s.Create(task)
		}
		if err != nil {
			logrus.Errorln(err)
			return imported, err
		}
		imported++
	}
	logrus.Infof("Imported %d of %d custom tasks", imported, len(tasks))
	return imported, nil
}
