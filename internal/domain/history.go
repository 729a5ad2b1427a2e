package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryEntry struct - a finished operation kept for the user
type HistoryEntry struct {
	ID               uuid.UUID         `gorm:"type:varchar(36);primaryKey" json:"id"`
	OperationType    string            `gorm:"type:varchar(100);not null;index" json:"operationType"`
	PromptText       string            `gorm:"type:text" json:"promptText"`
	ResponseText     *string           `gorm:"type:text" json:"responseText,omitempty"`
	OperationOptions map[string]string `gorm:"type:text;serializer:json" json:"operationOptions"`
	MediaPath        *string           `gorm:"type:text" json:"mediaPath,omitempty"`
	CreatedAt        time.Time         `gorm:"index" json:"createdAt"`
}

// TableName func
func (h *HistoryEntry) TableName() string {
	return "history_entries"
}

// BeforeCreate hook - generates UUID before creating
func (h *HistoryEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID != uuid.Nil {
		return nil
	}
	h.ID, err = uuid.NewRandom()
	return err
}

// NewHistoryEntry builds an entry from a successful result
func NewHistoryEntry(request OperationRequest, result OperationResult) HistoryEntry {
	entry := HistoryEntry{
		OperationType:    request.OperationType,
		PromptText:       request.Prompt,
		OperationOptions: request.Options,
		ResponseText:     result.Content,
		CreatedAt:        time.Now(),
	}
	switch {
	case result.ImageURL != nil:
		entry.MediaPath = result.ImageURL
	case result.AudioFilePath != nil:
		entry.MediaPath = result.AudioFilePath
	}
	return entry
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&CustomTask{}, &HistoryEntry{})
	if err != nil {
		panic(err)
	}
}
