package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-anywhere/internal/adapters/output/media"
	"ai-anywhere/internal/adapters/output/memory"
	"ai-anywhere/internal/application"
	"ai-anywhere/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// MockOperationService implements input.OperationService for testing
type MockOperationService struct {
	ProcessFunc          func(ctx context.Context, request domain.OperationRequest) domain.OperationResult
	ProcessStreamingFunc func(ctx context.Context, request domain.OperationRequest, notify domain.StreamNotifier) domain.OperationResult
	TestConnectionErr    error

	LastRequest *domain.OperationRequest
	CancelCalls int
}

func (m *MockOperationService) Process(ctx context.Context, request domain.OperationRequest) domain.OperationResult {
	m.LastRequest = &request
	if m.ProcessFunc != nil {
		return m.ProcessFunc(ctx, request)
	}
	return domain.TextResult("AI response")
}

func (m *MockOperationService) ProcessStreaming(ctx context.Context, request domain.OperationRequest, notify domain.StreamNotifier) domain.OperationResult {
	m.LastRequest = &request
	if m.ProcessStreamingFunc != nil {
		return m.ProcessStreamingFunc(ctx, request, notify)
	}
	return domain.TextResult("AI response")
}

func (m *MockOperationService) Cancel() {
	m.CancelCalls++
}

func (m *MockOperationService) ListOperations() ([]domain.Operation, error) {
	return domain.BuiltInOperations(nil), nil
}

func (m *MockOperationService) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	return []domain.ModelInfo{{ID: "gpt-4o-mini"}}, nil
}

func (m *MockOperationService) TestConnection(ctx context.Context) error {
	return m.TestConnectionErr
}

type testServer struct {
	app     *fiber.App
	ops     *MockOperationService
	history *memory.HistoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithContext(t, context.Background())
}

func newTestServerWithContext(t *testing.T, ctx context.Context) *testServer {
	t.Helper()
	files, err := media.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected media store, got: %v", err)
	}
	ops := &MockOperationService{}
	history := memory.NewHistoryStore()
	hdl := New(
		ctx,
		ops,
		application.NewCustomTaskService(memory.NewCustomTaskStore()),
		application.NewHistoryService(history, files, 100, 0),
		nil,
	)
	app := fiber.New()
	hdl.Register(app)
	return &testServer{app: app, ops: ops, history: history}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, ResponseBody, string) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("expected response, got: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var parsed ResponseBody
	json.Unmarshal(raw, &parsed)
	return resp.StatusCode, parsed, string(raw)
}

// TestHealthCheck_WithoutDatabase tests that health is OK when no database is configured
func TestHealthCheck_WithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	code, _, _ := s.do(t, "GET", "/health", nil)

	if code != fiber.StatusOK {
		t.Errorf("expected 200, got: %d", code)
	}
}

// TestProcessOperation_RecordsHistory tests that a successful operation is recorded in history
func TestProcessOperation_RecordsHistory(t *testing.T) {
	s := newTestServer(t)

	code, body, _ := s.do(t, "POST", "/v1/api/operations/process", OperationRequest{
		OperationType: "textTranslation",
		Prompt:        "Good morning",
		Options:       map[string]string{"language": "Spanish"},
	})

	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got: %d", code)
	}
	result, _ := body.Data.(map[string]interface{})
	if result["content"] != "AI response" || result["success"] != true {
		t.Errorf("unexpected result: %v", body.Data)
	}
	if s.ops.LastRequest.Options["language"] != "Spanish" {
		t.Errorf("expected options to reach the service, got: %v", s.ops.LastRequest.Options)
	}
	_, total, _ := s.history.List(domain.HistoryQuery{})
	if total != 1 {
		t.Errorf("expected 1 history entry, got: %d", total)
	}
}

// TestProcessOperation_MissingType tests that a request without operationType is rejected
func TestProcessOperation_MissingType(t *testing.T) {
	s := newTestServer(t)

	code, _, _ := s.do(t, "POST", "/v1/api/operations/process", OperationRequest{Prompt: "hi"})

	if code != fiber.StatusBadRequest {
		t.Errorf("expected 400, got: %d", code)
	}
	if s.ops.LastRequest != nil {
		t.Error("expected the service not to be called")
	}
}

// TestProcessOperation_FailureMapsStatus tests the HTTP status for each failure kind
func TestProcessOperation_FailureMapsStatus(t *testing.T) {
	s := newTestServer(t)
	s.ops.ProcessFunc = func(ctx context.Context, request domain.OperationRequest) domain.OperationResult {
		return domain.FailedResult(&domain.ProviderHTTPError{StatusCode: 500, Body: "boom"})
	}

	code, body, _ := s.do(t, "POST", "/v1/api/operations/process", OperationRequest{OperationType: "generalChat", Prompt: "hi"})

	if code != fiber.StatusBadGateway {
		t.Errorf("expected 502, got: %d", code)
	}
	result, _ := body.Data.(map[string]interface{})
	if result["success"] != false || result["error"] == nil {
		t.Errorf("expected failed result as data, got: %v", body.Data)
	}
	_, total, _ := s.history.List(domain.HistoryQuery{})
	if total != 0 {
		t.Errorf("expected failures not to be recorded, got: %d", total)
	}
}

// TestStreamOperation_WritesEvents tests the server-sent event sequence of a stream
func TestStreamOperation_WritesEvents(t *testing.T) {
	s := newTestServer(t)
	s.ops.ProcessStreamingFunc = func(ctx context.Context, request domain.OperationRequest, notify domain.StreamNotifier) domain.OperationResult {
		notify(domain.StreamNotification{Kind: domain.NotifyChunk, Delta: "Hel"})
		notify(domain.StreamNotification{Kind: domain.NotifyChunk, Delta: "lo"})
		notify(domain.StreamNotification{Kind: domain.NotifyDone, IsFinal: true})
		return domain.TextResult("Hello")
	}

	code, _, raw := s.do(t, "POST", "/v1/api/operations/stream", OperationRequest{OperationType: "generalChat", Prompt: "hi"})

	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got: %d", code)
	}
	expected := []string{
		"event: chunk\ndata: {\"kind\":\"chunk\",\"content\":\"Hel\",\"done\":false}\n\n",
		"event: chunk\ndata: {\"kind\":\"chunk\",\"content\":\"lo\",\"done\":false}\n\n",
		"event: done\ndata: {\"kind\":\"done\",\"content\":\"\",\"done\":true}\n\n",
		"event: result\ndata: {\"success\":true,\"resultKind\":\"text\",\"content\":\"Hello\"}\n\n",
	}
	if raw != strings.Join(expected, "") {
		t.Errorf("unexpected event stream:\n%s", raw)
	}
}

// TestStreamOperation_UsesServerContext tests that stopping the server stops in-flight streams
func TestStreamOperation_UsesServerContext(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	stop()
	s := newTestServerWithContext(t, ctx)
	var streamErr error
	s.ops.ProcessStreamingFunc = func(ctx context.Context, request domain.OperationRequest, notify domain.StreamNotifier) domain.OperationResult {
		streamErr = ctx.Err()
		return domain.CancelledResult()
	}

	code, _, _ := s.do(t, "POST", "/v1/api/operations/stream", OperationRequest{OperationType: "generalChat", Prompt: "hi"})

	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got: %d", code)
	}
	if !errors.Is(streamErr, context.Canceled) {
		t.Errorf("expected stream context to be cancelled, got: %v", streamErr)
	}
}

// TestCancelOperation tests that the cancel route reaches the operation service
func TestCancelOperation(t *testing.T) {
	s := newTestServer(t)

	code, _, _ := s.do(t, "POST", "/v1/api/operations/cancel", nil)

	if code != fiber.StatusOK || s.ops.CancelCalls != 1 {
		t.Errorf("expected cancel to be forwarded, got status %d and %d calls", code, s.ops.CancelCalls)
	}
}

// TestTestConnection_ProviderFailure tests that a provider failure maps to 502
func TestTestConnection_ProviderFailure(t *testing.T) {
	s := newTestServer(t)
	s.ops.TestConnectionErr = domain.ErrTransport

	code, _, _ := s.do(t, "GET", "/v1/api/models/test", nil)

	if code != fiber.StatusBadGateway {
		t.Errorf("expected 502, got: %d", code)
	}
}

// TestTasks_CreateGetUpdateDelete tests the custom task routes end to end
func TestTasks_CreateGetUpdateDelete(t *testing.T) {
	s := newTestServer(t)
	request := CustomTaskRequest{
		Name:         "Haiku",
		SystemPrompt: "Write about {topic}",
		Options:      []OptionRequest{{Key: "topic", Name: "Topic", Type: "text"}},
	}

	code, body, _ := s.do(t, "POST", "/v1/api/tasks", request)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got: %d", code)
	}
	id, _ := body.Data.(map[string]interface{})["id"].(string)

	code, _, _ = s.do(t, "GET", "/v1/api/tasks/"+id, nil)
	if code != fiber.StatusOK {
		t.Errorf("expected 200, got: %d", code)
	}

	request.Description = "poems"
	code, body, _ = s.do(t, "PUT", "/v1/api/tasks/"+id, request)
	if code != fiber.StatusOK || body.Data.(map[string]interface{})["description"] != "poems" {
		t.Errorf("expected update, got %d: %v", code, body.Data)
	}

	code, _, _ = s.do(t, "DELETE", "/v1/api/tasks/"+id, nil)
	if code != fiber.StatusOK {
		t.Errorf("expected 200, got: %d", code)
	}
	code, _, _ = s.do(t, "GET", "/v1/api/tasks/"+id, nil)
	if code != fiber.StatusNotFound {
		t.Errorf("expected 404 after delete, got: %d", code)
	}
}

// TestTasks_ValidationErrors tests that invalid task payloads are rejected with readable messages
func TestTasks_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	code, _, _ := s.do(t, "POST", "/v1/api/tasks", CustomTaskRequest{
		Name:         "Bad type",
		SystemPrompt: "x {a}",
		Options:      []OptionRequest{{Key: "a", Type: "slider"}},
	})
	if code != fiber.StatusBadRequest {
		t.Errorf("expected 400 for unknown option type, got: %d", code)
	}

	code, body, _ := s.do(t, "POST", "/v1/api/tasks", CustomTaskRequest{Name: "Mismatch", SystemPrompt: "x {a}"})
	if code != fiber.StatusBadRequest {
		t.Errorf("expected 400 for placeholder mismatch, got: %d", code)
	}
	if len(body.Status.Message) != 1 || !strings.Contains(body.Status.Message[0], "a") {
		t.Errorf("expected validation message, got: %v", body.Status.Message)
	}

	code, _, _ = s.do(t, "GET", "/v1/api/tasks/not-a-uuid", nil)
	if code != fiber.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got: %d", code)
	}
}

// TestTasks_ExportImport tests the export and import routes
func TestTasks_ExportImport(t *testing.T) {
	s := newTestServer(t)
	s.do(t, "POST", "/v1/api/tasks", CustomTaskRequest{Name: "One", SystemPrompt: "Do one"})

	req := httptest.NewRequest("GET", "/v1/api/tasks/export", nil)
	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("expected response, got: %v", err)
	}
	exported, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	other := newTestServer(t)
	req = httptest.NewRequest("POST", "/v1/api/tasks/import", bytes.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	resp, err = other.app.Test(req, -1)
	if err != nil {
		t.Fatalf("expected response, got: %v", err)
	}
	defer resp.Body.Close()

	var body ResponseBody
	json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != fiber.StatusOK || body.Data.(map[string]interface{})["imported"] != float64(1) {
		t.Errorf("expected 1 imported task, got %d: %v", resp.StatusCode, body.Data)
	}
}

// TestHistory_ListSearchAndDelete tests the history routes end to end
func TestHistory_ListSearchAndDelete(t *testing.T) {
	s := newTestServer(t)
	for _, p := range []string{"red fox", "blue whale"} {
		s.do(t, "POST", "/v1/api/history", RecordHistoryRequest{
			Request: OperationRequest{OperationType: "generalChat", Prompt: p},
			Result:  domain.TextResult("ok"),
		})
	}

	code, body, _ := s.do(t, "GET", "/v1/api/history?q=FOX&limit=10", nil)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got: %d", code)
	}
	entries, _ := body.Data.([]interface{})
	if len(entries) != 1 || body.TotalItem == nil || *body.TotalItem != 1 {
		t.Fatalf("expected 1 match, got: %v", body.Data)
	}

	id := entries[0].(map[string]interface{})["id"].(string)
	code, _, _ = s.do(t, "DELETE", "/v1/api/history/"+id, nil)
	if code != fiber.StatusOK {
		t.Errorf("expected 200, got: %d", code)
	}
	code, _, _ = s.do(t, "DELETE", "/v1/api/history/"+id, nil)
	if code != fiber.StatusNotFound {
		t.Errorf("expected 404, got: %d", code)
	}

	code, _, _ = s.do(t, "GET", "/v1/api/history?limit=0", nil)
	if code != fiber.StatusBadRequest {
		t.Errorf("expected 400 for limit 0, got: %d", code)
	}
}
