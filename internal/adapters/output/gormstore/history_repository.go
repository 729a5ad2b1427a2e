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

var _ output.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository struct - Secondary/Driven adapter for the operation history over GORM
type HistoryRepository struct {
	dbGorm *gorm.DB
}

// NewHistoryRepository func - Creates new repository and migrates the schema
func NewHistoryRepository(dbGorm *gorm.DB) *HistoryRepository {
	domain.MigrateDatabase(dbGorm)
	return &HistoryRepository{
		dbGorm: dbGorm,
	}
}

// Create func - Inserts an entry
func (p *HistoryRepository) Create(entry *domain.HistoryEntry) error {
	if err := p.dbGorm.Create(entry).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// List func - Entries newest first with the total match count
func (p *HistoryRepository) List(query domain.HistoryQuery) ([]domain.HistoryEntry, int64, error) {
	var (
		entry   domain.HistoryEntry
		entries = []domain.HistoryEntry{}
		total   int64
	)
	tx := p.dbGorm.Model(&entry)
	if keyword := strings.TrimSpace(query.Search); keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		tx = tx.Where("LOWER(prompt_text) LIKE ? OR LOWER(response_text) LIKE ?", like, like)
	}

	if err := tx.Count(&total).Error; err != nil {
		logrus.Errorln(err)
		return nil, 0, err
	}
	tx = tx.Order("created_at DESC")
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit).Offset(query.Offset)
	}
	if err := tx.Find(&entries).Error; err != nil {
		logrus.Errorln(err)
		return nil, 0, err
	}
	return entries, total, nil
}

// Delete func - Removes an entry and returns it
func (p *HistoryRepository) Delete(id uuid.UUID) (*domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	err := p.dbGorm.Where("id = ?", id.String()).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrHistoryEntryNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if err := p.dbGorm.Delete(&entry).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &entry, nil
}

// Clear func - Removes every entry and returns them
func (p *HistoryRepository) Clear() ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := p.dbGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&entries).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.HistoryEntry{}).Error
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return entries, nil
}

// TrimTo func - Keeps the newest limit entries and returns the removed ones
func (p *HistoryRepository) TrimTo(limit int) ([]domain.HistoryEntry, error) {
	var stale []domain.HistoryEntry
	err := p.dbGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at DESC").Offset(limit).Find(&stale).Error; err != nil {
			return err
		}
		if len(stale) == 0 {
			return nil
		}
		ids := make([]string, 0, len(stale))
		for _, e := range stale {
			ids = append(ids, e.ID.String())
		}
		return tx.Where("id IN ?", ids).Delete(&domain.HistoryEntry{}).Error
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return stale, nil
}
