package application

import (
	"time"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HistoryService struct - Application service for the operation history
type HistoryService struct {
	repo          output.HistoryRepository
	media         output.MediaStore
	limit         int
	retentionDays int
	now           func() time.Time
}

// NewHistoryService func - Creates new history service.
// A limit or retention of zero or less disables trimming or cleanup.
func NewHistoryService(repo output.HistoryRepository, media output.MediaStore, limit, retentionDays int) *HistoryService {
	return &HistoryService{
		repo:          repo,
		media:         media,
		limit:         limit,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// Record func - Use case: keep a successful result and trim the oldest entries
func (s *HistoryService) Record(request domain.OperationRequest, result domain.OperationResult) (*domain.HistoryEntry, error) {
	if !result.Success {
		return nil, nil
	}

	entry := domain.NewHistoryEntry(request, result)
	if err := s.repo.Create(&entry); err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	if s.limit > 0 {
		trimmed, err := s.repo.TrimTo(s.limit)
		if err != nil {
			logrus.Errorln(err)
			return &entry, err
		}
		s.removeMedia(trimmed...)
	}
	return &entry, nil
}

// List func - Use case: search the history, newest first
func (s *HistoryService) List(query domain.HistoryQuery) ([]domain.HistoryEntry, int64, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	return s.repo.List(query)
}

// Delete func - Use case: remove one entry with its media
func (s *HistoryService) Delete(id uuid.UUID) error {
	entry, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	s.removeMedia(*entry)
	return nil
}

// Clear func - Use case: remove every entry with its media
func (s *HistoryService) Clear() error {
	entries, err := s.repo.Clear()
	if err != nil {
		logrus.Errorln(err)
		return err
	}
	s.removeMedia(entries...)
	logrus.Infof("History cleared, %d entries removed", len(entries))
	return nil
}

// CleanupMedia func - Use case: remove stored media past the retention period
func (s *HistoryService) CleanupMedia() (int, error) {
	if s.retentionDays <= 0 {
		return 0, nil
	}
	cutoff := s.now().AddDate(0, 0, -s.retentionDays)
	removed, err := s.media.Cleanup(cutoff)
	if err != nil {
		logrus.Errorln(err)
		return removed, err
	}
	if removed > 0 {
		logrus.Infof("Removed %d media files older than %d days", removed, s.retentionDays)
	}
	return removed, nil
}

func (s *HistoryService) removeMedia(entries ...domain.HistoryEntry) {
	for _, e := range entries {
		if e.MediaPath == nil {
			continue
		}
		if err := s.media.Delete(*e.MediaPath); err != nil {
			logrus.Warnf("Failed to delete media %s: %v", *e.MediaPath, err)
		}
	}
}
