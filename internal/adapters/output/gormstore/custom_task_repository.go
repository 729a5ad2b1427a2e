package gormstore

import (
	"errors"
	"strings"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.CustomTaskRepository = (*CustomTaskRepository)(nil)

// CustomTaskRepository struct - Secondary/Driven adapter for custom tasks over GORM
type CustomTaskRepository struct {
	dbGorm *gorm.DB
}

// NewCustomTaskRepository func - Creates new repository and migrates the schema
func NewCustomTaskRepository(dbGorm *gorm.DB) *CustomTaskRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &CustomTaskRepository{
		dbGorm: dbGorm,
	}
}

// List func - All tasks ordered by name
func (p *CustomTaskRepository) List() ([]domain.CustomTask, error) {
	tasks := []domain.CustomTask{}
	if err := p.dbGorm.Order("name ASC").Find(&tasks).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return tasks, nil
}

// Get func - One task by id
func (p *CustomTaskRepository) Get(id uuid.UUID) (*domain.CustomTask, error) {
	var task domain.CustomTask
	err := p.dbGorm.Where("id = ?", id.String()).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomTaskNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &task, nil
}

// FindByName func - One task by name, compared case-insensitively
func (p *CustomTaskRepository) FindByName(name string) (*domain.CustomTask, error) {
	var task domain.CustomTask
	err := p.dbGorm.Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomTaskNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &task, nil
}

// Create func - Inserts a task, the id is generated by the model hook
func (p *CustomTaskRepository) Create(task *domain.CustomTask) error {
	if err := p.dbGorm.Create(task).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// Save func - Updates every column of an existing task
func (p *CustomTaskRepository) Save(task *domain.CustomTask) error {
	tx := p.dbGorm.Begin()
	defer func() {
		tx.Rollback()
	}()
	res := tx.Model(task).
		Select("name", "description", "system_prompt", "options", "updated_at").
		Updates(task)
	if res.Error != nil {
		logrus.Errorln(res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomTaskNotFound
	}
	return tx.Commit().Error
}

// Delete func - Removes a task
func (p *CustomTaskRepository) Delete(id uuid.UUID) error {
	res := p.dbGorm.Where("id = ?", id.String()).Delete(&domain.CustomTask{})
	if res.Error != nil {
		logrus.Errorln(res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomTaskNotFound
	}
	return nil
}
