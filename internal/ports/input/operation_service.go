package input

import (
	"context"

	"ai-anywhere/internal/domain"
)

// OperationService interface - Input port (use case)
// Runs operations against the provider. It never persists results.
type OperationService interface {
	// Process runs the request without streaming.
	Process(ctx context.Context, request domain.OperationRequest) domain.OperationResult
	// ProcessStreaming streams text operations through notify. Media
	// operations fall back to Process and emit no notifications.
	ProcessStreaming(ctx context.Context, request domain.OperationRequest, notify domain.StreamNotifier) domain.OperationResult
	// Cancel stops the in-flight streaming operation, if any.
	Cancel()
	ListOperations() ([]domain.Operation, error)
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
	TestConnection(ctx context.Context) error
}
