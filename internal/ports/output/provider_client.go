package output

import (
	"context"

	"ai-anywhere/internal/domain"
)

// ProviderClient interface - Output port
// Defines what the application needs from an OpenAI-compatible backend.
// Text results are returned raw; post-processing is the caller's concern.
type ProviderClient interface {
	// ChatCompletion sends a non-streaming chat completion and returns
	// choices[0].message.content.
	ChatCompletion(ctx context.Context, call domain.ChatCall) (string, error)

	// ChatCompletionStream sends a streaming chat completion. Every delta is
	// passed to notify in stream order. The cancel signal is checked once per
	// received chunk; when it is observed the call returns domain.ErrCancelled
	// and no further deltas are emitted.
	ChatCompletionStream(ctx context.Context, call domain.ChatCall, cancel *domain.CancelSignal, notify domain.StreamNotifier) (domain.StreamOutcome, error)

	// GenerateImage returns the URL of the first generated image.
	GenerateImage(ctx context.Context, call domain.ImageCall) (string, error)

	// Transcribe uploads an audio file and returns the transcript.
	Transcribe(ctx context.Context, call domain.TranscriptionCall) (string, error)

	// Synthesize returns the encoded audio bytes for the input text.
	Synthesize(ctx context.Context, call domain.SpeechCall) ([]byte, error)

	// ListModels returns the models advertised by the backend.
	ListModels(ctx context.Context, target domain.ProviderTarget) ([]domain.ModelInfo, error)
}
