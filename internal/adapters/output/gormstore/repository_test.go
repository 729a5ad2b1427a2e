package gormstore

import (
	"errors"
	"testing"
	"time"

	"ai-anywhere/internal/domain"
	gormdriver "ai-anywhere/pkg/database_driver/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gormdriver.ConnectToSQLite(":memory:")
	if err != nil {
		t.Fatalf("expected sqlite connection, got: %v", err)
	}
	t.Cleanup(func() { gormdriver.Disconnect(db.Conn) })
	return db.Conn
}

func strPtr(s string) *string {
	return &s
}

// TestCustomTaskRepository_CRUD tests create, get, save and delete against sqlite
func TestCustomTaskRepository_CRUD(t *testing.T) {
	repo := NewCustomTaskRepository(newTestDB(t))

	task := &domain.CustomTask{
		Name:         "Haiku",
		SystemPrompt: "Write about {topic}",
		Options:      []domain.OperationOption{{Key: "topic", Name: "Topic", Type: domain.OptionText}},
	}
	if err := repo.Create(task); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if task.ID == uuid.Nil {
		t.Fatal("expected id to be generated")
	}

	got, err := repo.Get(task.ID)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(got.Options) != 1 || got.Options[0].Key != "topic" {
		t.Errorf("expected options to round trip, got: %+v", got.Options)
	}

	got.Description = "short poems"
	got.Options = append(got.Options, domain.OperationOption{Key: "mood", Type: domain.OptionText})
	if err := repo.Save(got); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	reloaded, _ := repo.Get(task.ID)
	if reloaded.Description != "short poems" || len(reloaded.Options) != 2 {
		t.Errorf("expected update to be stored, got: %+v", reloaded)
	}

	byName, err := repo.FindByName("  HAIKU ")
	if err != nil || byName.ID != task.ID {
		t.Errorf("expected case-insensitive name lookup, got: %v, %v", byName, err)
	}

	if err := repo.Delete(task.ID); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if _, err := repo.Get(task.ID); !errors.Is(err, domain.ErrCustomTaskNotFound) {
		t.Errorf("expected ErrCustomTaskNotFound, got: %v", err)
	}
	if err := repo.Delete(task.ID); !errors.Is(err, domain.ErrCustomTaskNotFound) {
		t.Errorf("expected ErrCustomTaskNotFound on second delete, got: %v", err)
	}
}

// TestCustomTaskRepository_SaveUnknown tests saving a task that was never created
func TestCustomTaskRepository_SaveUnknown(t *testing.T) {
	repo := NewCustomTaskRepository(newTestDB(t))

	err := repo.Save(&domain.CustomTask{ID: uuid.New(), Name: "ghost", SystemPrompt: "x"})

	if !errors.Is(err, domain.ErrCustomTaskNotFound) {
		t.Errorf("expected ErrCustomTaskNotFound, got: %v", err)
	}
}

// TestCustomTaskRepository_ListOrdersByName tests that tasks are listed by name
func TestCustomTaskRepository_ListOrdersByName(t *testing.T) {
	repo := NewCustomTaskRepository(newTestDB(t))
	for _, name := range []string{"zeta", "alpha", "mid"} {
		repo.Create(&domain.CustomTask{Name: name, SystemPrompt: "p"})
	}

	tasks, err := repo.List()

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(tasks) != 3 || tasks[0].Name != "alpha" || tasks[2].Name != "zeta" {
		t.Errorf("expected tasks ordered by name, got: %+v", tasks)
	}
}

func seedHistory(t *testing.T, repo *HistoryRepository, prompts ...string) []domain.HistoryEntry {
	t.Helper()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	var entries []domain.HistoryEntry
	for i, p := range prompts {
		entry := domain.HistoryEntry{
			OperationType: "generalChat",
			PromptText:    p,
			ResponseText:  strPtr("answer to " + p),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(&entry); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// TestHistoryRepository_ListSearchAndPaging tests history search and paging against sqlite
func TestHistoryRepository_ListSearchAndPaging(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))
	seedHistory(t, repo, "Red fox", "blue whale", "red panda")

	entries, total, err := repo.List(domain.HistoryQuery{Search: "RED", Limit: 1})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 matches, got %d", total)
	}
	if len(entries) != 1 || entries[0].PromptText != "red panda" {
		t.Errorf("expected newest match first, got: %+v", entries)
	}

	entries, _, _ = repo.List(domain.HistoryQuery{Search: "whale"})
	if len(entries) != 1 || entries[0].PromptText != "blue whale" {
		t.Errorf("expected response text to be searched, got: %+v", entries)
	}
}

// TestHistoryRepository_TrimToKeepsNewest tests that TrimTo keeps the newest entries
func TestHistoryRepository_TrimToKeepsNewest(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))
	seeded := seedHistory(t, repo, "one", "two", "three", "four")

	removed, err := repo.TrimTo(2)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(removed) != 2 || removed[0].ID != seeded[1].ID || removed[1].ID != seeded[0].ID {
		t.Errorf("expected the two oldest entries removed, got: %+v", removed)
	}
	_, total, _ := repo.List(domain.HistoryQuery{})
	if total != 2 {
		t.Errorf("expected 2 entries left, got %d", total)
	}

	removed, _ = repo.TrimTo(5)
	if len(removed) != 0 {
		t.Errorf("expected nothing removed under the limit, got %d", len(removed))
	}
}

// TestHistoryRepository_DeleteAndClear tests deleting one entry and clearing all
func TestHistoryRepository_DeleteAndClear(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))
	seeded := seedHistory(t, repo, "a", "b", "c")

	deleted, err := repo.Delete(seeded[0].ID)
	if err != nil || deleted.PromptText != "a" {
		t.Fatalf("expected entry 'a' deleted, got: %v, %v", deleted, err)
	}
	if _, err := repo.Delete(seeded[0].ID); !errors.Is(err, domain.ErrHistoryEntryNotFound) {
		t.Errorf("expected ErrHistoryEntryNotFound, got: %v", err)
	}

	cleared, err := repo.Clear()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(cleared) != 2 {
		t.Errorf("expected 2 cleared entries, got %d", len(cleared))
	}
	_, total, _ := repo.List(domain.HistoryQuery{})
	if total != 0 {
		t.Errorf("expected empty history, got %d", total)
	}
}
