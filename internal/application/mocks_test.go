package application

import (
	"context"
	"strings"
	"time"

	"ai-anywhere/internal/domain"

	"github.com/google/uuid"
)

// Mock implementations for testing

// MockProviderClient implements output.ProviderClient for testing
type MockProviderClient struct {
	ChatCompletionFunc       func(ctx context.Context, call domain.ChatCall) (string, error)
	ChatCompletionStreamFunc func(ctx context.Context, call domain.ChatCall, cancel *domain.CancelSignal, notify domain.StreamNotifier) (domain.StreamOutcome, error)
	GenerateImageFunc        func(ctx context.Context, call domain.ImageCall) (string, error)
	TranscribeFunc           func(ctx context.Context, call domain.TranscriptionCall) (string, error)
	SynthesizeFunc           func(ctx context.Context, call domain.SpeechCall) ([]byte, error)
	ListModelsFunc           func(ctx context.Context, target domain.ProviderTarget) ([]domain.ModelInfo, error)

	// Captured values for assertions
	LastChatCall          *domain.ChatCall
	LastImageCall         *domain.ImageCall
	LastTranscriptionCall *domain.TranscriptionCall
	LastSpeechCall        *domain.SpeechCall
	Calls                 int
}

func (m *MockProviderClient) ChatCompletion(ctx context.Context, call domain.ChatCall) (string, error) {
	m.Calls++
	m.LastChatCall = &call
	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, call)
	}
	return "AI response", nil
}

func (m *MockProviderClient) ChatCompletionStream(ctx context.Context, call domain.ChatCall, cancel *domain.CancelSignal, notify domain.StreamNotifier) (domain.StreamOutcome, error) {
	m.Calls++
	m.LastChatCall = &call
	if m.ChatCompletionStreamFunc != nil {
		return m.ChatCompletionStreamFunc(ctx, call, cancel, notify)
	}
	return domain.StreamOutcome{Content: "AI response"}, nil
}

func (m *MockProviderClient) GenerateImage(ctx context.Context, call domain.ImageCall) (string, error) {
	m.Calls++
	m.LastImageCall = &call
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, call)
	}
	return "https://images.example.com/1.png", nil
}

func (m *MockProviderClient) Transcribe(ctx context.Context, call domain.TranscriptionCall) (string, error) {
	m.Calls++
	m.LastTranscriptionCall = &call
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, call)
	}
	return "transcribed text", nil
}

func (m *MockProviderClient) Synthesize(ctx context.Context, call domain.SpeechCall) ([]byte, error) {
	m.Calls++
	m.LastSpeechCall = &call
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, call)
	}
	return []byte("ID3audio"), nil
}

func (m *MockProviderClient) ListModels(ctx context.Context, target domain.ProviderTarget) ([]domain.ModelInfo, error) {
	m.Calls++
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx, target)
	}
	return []domain.ModelInfo{{ID: "gpt-4o-mini"}}, nil
}

// MockSettings implements output.SettingsProvider for testing
type MockSettings struct {
	Value domain.ProviderSettings
}

func (m *MockSettings) Settings() domain.ProviderSettings {
	return m.Value
}

// MockCredentials implements output.CredentialProvider for testing
type MockCredentials struct {
	Key string
	Err error
}

func (m *MockCredentials) APIKey() (string, error) {
	return m.Key, m.Err
}

// MockMediaStore implements output.MediaStore for testing
type MockMediaStore struct {
	SaveAudioFunc func(data []byte, format string) (string, error)
	CleanupFunc   func(before time.Time) (int, error)

	SavedFormats  []string
	DeletedPaths  []string
	CleanupBefore *time.Time
}

func (m *MockMediaStore) SaveAudio(data []byte, format string) (string, error) {
	m.SavedFormats = append(m.SavedFormats, format)
	if m.SaveAudioFunc != nil {
		return m.SaveAudioFunc(data, format)
	}
	return "/tmp/media/audio_1_abcd1234." + format, nil
}

func (m *MockMediaStore) Delete(path string) error {
	m.DeletedPaths = append(m.DeletedPaths, path)
	return nil
}

func (m *MockMediaStore) Cleanup(before time.Time) (int, error) {
	m.CleanupBefore = &before
	if m.CleanupFunc != nil {
		return m.CleanupFunc(before)
	}
	return 0, nil
}

// MockCustomTaskRepository implements output.CustomTaskRepository for testing
type MockCustomTaskRepository struct {
	Tasks   []domain.CustomTask
	ListErr error
}

func (m *MockCustomTaskRepository) List() ([]domain.CustomTask, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]domain.CustomTask(nil), m.Tasks...), nil
}

func (m *MockCustomTaskRepository) Get(id uuid.UUID) (*domain.CustomTask, error) {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			task := m.Tasks[i]
			return &task, nil
		}
	}
	return nil, domain.ErrCustomTaskNotFound
}

func (m *MockCustomTaskRepository) FindByName(name string) (*domain.CustomTask, error) {
	for i := range m.Tasks {
		if strings.EqualFold(m.Tasks[i].Name, name) {
			task := m.Tasks[i]
			return &task, nil
		}
	}
	return nil, domain.ErrCustomTaskNotFound
}

func (m *MockCustomTaskRepository) Create(task *domain.CustomTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	m.Tasks = append(m.Tasks, *task)
	return nil
}

func (m *MockCustomTaskRepository) Save(task *domain.CustomTask) error {
	for i := range m.Tasks {
		if m.Tasks[i].ID == task.ID {
			m.Tasks[i] = *task
			return nil
		}
	}
	return domain.ErrCustomTaskNotFound
}

func (m *MockCustomTaskRepository) Delete(id uuid.UUID) error {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrCustomTaskNotFound
}

// MockHistoryRepository implements output.HistoryRepository for testing
type MockHistoryRepository struct {
	Entries []domain.HistoryEntry

	TrimCalls []int
	LastQuery *domain.HistoryQuery
}

func (m *MockHistoryRepository) Create(entry *domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.Entries = append([]domain.HistoryEntry{*entry}, m.Entries...)
	return nil
}

func (m *MockHistoryRepository) List(query domain.HistoryQuery) ([]domain.HistoryEntry, int64, error) {
	m.LastQuery = &query
	return m.Entries, int64(len(m.Entries)), nil
}

func (m *MockHistoryRepository) Delete(id uuid.UUID) (*domain.HistoryEntry, error) {
	for i := range m.Entries {
		if m.Entries[i].ID == id {
			entry := m.Entries[i]
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return &entry, nil
		}
	}
	return nil, domain.ErrHistoryEntryNotFound
}

func (m *MockHistoryRepository) Clear() ([]domain.HistoryEntry, error) {
	removed := m.Entries
	m.Entries = nil
	return removed, nil
}

func (m *MockHistoryRepository) TrimTo(limit int) ([]domain.HistoryEntry, error) {
	m.TrimCalls = append(m.TrimCalls, limit)
	if len(m.Entries) <= limit {
		return nil, nil
	}
	removed := append([]domain.HistoryEntry(nil), m.Entries[limit:]...)
	m.Entries = m.Entries[:limit]
	return removed, nil
}
