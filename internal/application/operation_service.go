package application

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const audioGeneratedMessage = "Audio generated successfully"

// OperationService struct - Application service routing operations to the provider.
// It holds the session's cancel signal; one streaming operation runs at a time.
type OperationService struct {
	provider    output.ProviderClient
	settings    output.SettingsProvider
	credentials output.CredentialProvider
	tasks       output.CustomTaskRepository
	media       output.MediaStore
	resolver    *PromptResolver
	cancel      domain.CancelSignal
}

// NewOperationService func - Creates new operation service
func NewOperationService(
	provider output.ProviderClient,
	settings output.SettingsProvider,
	credentials output.CredentialProvider,
	tasks output.CustomTaskRepository,
	media output.MediaStore,
) *OperationService {
	return &OperationService{
		provider:    provider,
		settings:    settings,
		credentials: credentials,
		tasks:       tasks,
		media:       media,
		resolver:    NewPromptResolver(tasks),
	}
}

// Process func - Use case: run an operation and return the whole result
func (s *OperationService) Process(ctx context.Context, request domain.OperationRequest) domain.OperationResult {
	return s.run(ctx, request, false, nil)
}

// ProcessStreaming func - Use case: run an operation relaying deltas as they arrive
func (s *OperationService) ProcessStreaming(ctx context.Context, request domain.OperationRequest, notify domain.StreamNotifier) domain.OperationResult {
	return s.run(ctx, request, true, notify)
}

// Cancel func - Use case: cancel the in-flight streaming operation
func (s *OperationService) Cancel() {
	logrus.Info("Cancellation requested")
	s.cancel.Cancel()
}

func (s *OperationService) run(ctx context.Context, request domain.OperationRequest, stream bool, notify domain.StreamNotifier) domain.OperationResult {
	result := s.dispatch(ctx, request, stream, notify)
	switch {
	case result.Cancelled:
		logrus.Infof("Operation %s cancelled", request.OperationType)
	case !result.Success:
		logrus.Errorf("Operation %s failed: %v", request.OperationType, result.Err)
	}
	return result
}

func (s *OperationService) dispatch(ctx context.Context, request domain.OperationRequest, stream bool, notify domain.StreamNotifier) domain.OperationResult {
	if err := domain.ValidatePromptLength(request.Prompt); err != nil {
		return domain.FailedResult(err)
	}

	kind := request.Kind()
	settings := s.settings.Settings()
	systemPrompt, err := s.resolver.Resolve(kind, request.Options, settings.PromptOverrides)
	if err != nil {
		return domain.FailedResult(err)
	}

	apiKey, err := s.apiKey()
	if err != nil {
		return domain.FailedResult(err)
	}
	target := domain.ProviderTarget{BaseURL: settings.BaseURL, APIKey: apiKey}

	family := kind.Family()
	if settings.Debug {
		logrus.WithFields(logrus.Fields{
			"operation": kind.String(),
			"family":    family.String(),
			"stream":    stream && family.Streams(),
			"base_url":  settings.BaseURL,
		}).Info("Dispatching operation")
	}

	switch family {
	case domain.FamilyImage:
		return s.generateImage(ctx, target, settings, request)
	case domain.FamilySpeechToText:
		return s.transcribe(ctx, target, settings, request)
	case domain.FamilyTextToSpeech:
		return s.synthesize(ctx, target, settings, request)
	}

	call := domain.ChatCall{
		Target:       target,
		Model:        settings.LLMModel,
		SystemPrompt: systemPrompt,
		UserPrompt:   domain.BuildUserPrompt(request.Prompt, request.SelectedText),
		MaxTokens:    settings.MaxTokens,
		Temperature:  settings.Temperature,
	}
	if stream {
		return s.streamChat(ctx, call, notify)
	}

	content, err := s.provider.ChatCompletion(ctx, call)
	if err != nil {
		return domain.FailedResult(err)
	}
	return domain.TextResult(domain.ProcessResponse(content))
}

func (s *OperationService) apiKey() (string, error) {
	key, err := s.credentials.APIKey()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMissingAPIKey, err)
	}
	if strings.TrimSpace(key) == "" {
		return "", domain.ErrMissingAPIKey
	}
	return key, nil
}

func (s *OperationService) streamChat(ctx context.Context, call domain.ChatCall, notify domain.StreamNotifier) domain.OperationResult {
	s.cancel.Reset()

	outcome, err := s.provider.ChatCompletionStream(ctx, call, &s.cancel, notify)
	result := domain.TextResult(domain.ProcessResponse(outcome.Content))
	if err != nil {
		result = domain.ResultFromError(err)
	}
	result.SkippedPayloads = outcome.SkippedPayloads
	return result
}

func (s *OperationService) generateImage(ctx context.Context, target domain.ProviderTarget, settings domain.ProviderSettings, request domain.OperationRequest) domain.OperationResult {
	url, err := s.provider.GenerateImage(ctx, domain.ImageCall{
		Target:    target,
		Model:     settings.ImageModel,
		Prompt:    request.Prompt,
		SizeLabel: request.Option("size", ""),
		Quality:   request.Option("quality", ""),
		Style:     request.Option("style", ""),
	})
	if err != nil {
		return domain.FailedResult(err)
	}
	return domain.ImageResult(url)
}

func (s *OperationService) transcribe(ctx context.Context, target domain.ProviderTarget, settings domain.ProviderSettings, request domain.OperationRequest) domain.OperationResult {
	if request.AudioFilePath == nil || *request.AudioFilePath == "" {
		return domain.FailedResult(fmt.Errorf("%w: no audio file provided", domain.ErrAudioFileNotFound))
	}
	text, err := s.provider.Transcribe(ctx, domain.TranscriptionCall{
		Target:    target,
		Model:     settings.AudioModel,
		AudioPath: *request.AudioFilePath,
		Language:  request.Option("language", "auto"),
	})
	if err != nil {
		return domain.FailedResult(err)
	}
	return domain.TextResult(domain.NormalizeTranscription(text))
}

func (s *OperationService) synthesize(ctx context.Context, target domain.ProviderTarget, settings domain.ProviderSettings, request domain.OperationRequest) domain.OperationResult {
	if strings.TrimSpace(request.Prompt) == "" {
		return domain.FailedResult(domain.ErrEmptyInput)
	}
	speed, err := strconv.ParseFloat(request.Option("speed", "1.0"), 64)
	if err != nil || math.IsNaN(speed) {
		speed = 1.0
	}
	format := request.Option("format", "mp3")

	audio, err := s.provider.Synthesize(ctx, domain.SpeechCall{
		Target:   target,
		Model:    request.Option("model", settings.TTSModel),
		Input:    request.Prompt,
		Voice:    request.Option("voice", "alloy"),
		Format:   format,
		Speed:    speed,
		Language: request.Option("language", "pt"),
	})
	if err != nil {
		return domain.FailedResult(err)
	}

	path, err := s.media.SaveAudio(audio, format)
	if err != nil {
		return domain.FailedResult(fmt.Errorf("failed to save audio file: %w", err))
	}
	logrus.Infof("%s: %s", audioGeneratedMessage, path)
	return domain.AudioResult(path, format)
}

// ListOperations func - Use case: built-in operations followed by custom tasks
func (s *OperationService) ListOperations() ([]domain.Operation, error) {
	ops := domain.BuiltInOperations(s.settings.Settings().PromptOverrides)
	if s.tasks == nil {
		return ops, nil
	}
	tasks, err := s.tasks.List()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	for i := range tasks {
		ops = append(ops, tasks[i].AsOperation())
	}
	return ops, nil
}

// ListModels func - Use case: models advertised by the provider
func (s *OperationService) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	apiKey, err := s.apiKey()
	if err != nil {
		return nil, err
	}
	return s.provider.ListModels(ctx, domain.ProviderTarget{BaseURL: s.settings.Settings().BaseURL, APIKey: apiKey})
}

// TestConnection func - Use case: check the provider answers with the current settings
func (s *OperationService) TestConnection(ctx context.Context) error {
	models, err := s.ListModels(ctx)
	if err != nil {
		return err
	}
	logrus.Infof("Connection OK, %d models available", len(models))
	return nil
}
