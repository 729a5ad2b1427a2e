package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomTask struct - user-authored operation
type CustomTask struct {
	ID           uuid.UUID         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string            `gorm:"type:varchar(200);not null;index" json:"name"`
	Description  string            `gorm:"type:text" json:"description"`
	SystemPrompt string            `gorm:"type:text;not null" json:"systemPrompt"`
	Options      []OperationOption `gorm:"type:text;serializer:json" json:"options"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// TableName func
func (t *CustomTask) TableName() string {
	return "custom_tasks"
}

// BeforeCreate hook - generates UUID before creating
func (t *CustomTask) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID != uuid.Nil {
		return nil
	}
	t.ID, err = uuid.NewRandom()
	return err
}

// Validate checks the task can be offered as an operation: name and prompt
// are required and the prompt placeholders must match the option keys exactly.
// Every problem is reported, not just the first.
func (t *CustomTask) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(t.Name) == "" {
		verr.Reasons = append(verr.Reasons, "task name cannot be empty")
	}
	if strings.TrimSpace(t.SystemPrompt) == "" {
		verr.Reasons = append(verr.Reasons, "system prompt cannot be empty")
	}

	declared := map[string]struct{}{}
	for _, o := range t.Options {
		if strings.TrimSpace(o.Key) == "" {
			verr.Reasons = append(verr.Reasons, "option key cannot be empty")
			continue
		}
		if !ValidOptionKey(o.Key) {
			verr.Reasons = append(verr.Reasons, fmt.Sprintf("option key %q may only contain letters, digits, '_', '-' and '.'", o.Key))
			continue
		}
		declared[o.Key] = struct{}{}
	}
	used := map[string]struct{}{}
	for _, key := range Placeholders(t.SystemPrompt) {
		used[key] = struct{}{}
		if _, ok := declared[key]; !ok {
			verr.Extra = append(verr.Extra, key)
		}
	}
	for key := range declared {
		if _, ok := used[key]; !ok {
			verr.Missing = append(verr.Missing, key)
		}
	}
	sort.Strings(verr.Missing)
	sort.Strings(verr.Extra)

	if verr.HasProblems() {
		return verr
	}
	return nil
}

// AsOperation exposes the task in the operation catalog
func (t *CustomTask) AsOperation() Operation {
	return Operation{
		Type:         t.ID.String(),
		Name:         t.Name,
		Description:  t.Description,
		SystemPrompt: t.SystemPrompt,
		Options:      t.Options,
		Custom:       true,
	}
}
