package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"ai-anywhere/configs"
	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ClientAdapter implements ProviderClient interface
var _ output.ProviderClient = (*ClientAdapter)(nil)

const (
	defaultTimeout   = 300 * time.Second
	defaultDoneGrace = 2 * time.Second
)

// ClientAdapter struct - Output adapter for OpenAI-compatible HTTP APIs.
// It holds no per-call state: base URL, models and the key arrive with each call.
type ClientAdapter struct {
	httpClient *http.Client
	doneGrace  time.Duration
}

// NewClientAdapter func - Creates new provider client adapter
func NewClientAdapter(config configs.Provider) *ClientAdapter {
	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}
	doneGrace := time.Duration(config.DoneGrace) * time.Second
	if config.DoneGrace <= 0 {
		doneGrace = defaultDoneGrace
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("Provider client adapter initialized, timeout: %v", timeout)

	return &ClientAdapter{
		httpClient: httpClient,
		doneGrace:  doneGrace,
	}
}

// do executes a call spec. Network failures become domain.ErrTransport and
// non-2xx answers become *domain.ProviderHTTPError with the body verbatim.
func (a *ClientAdapter) do(ctx context.Context, spec *domain.ProviderCallSpec) (*http.Response, error) {
	var body io.Reader
	if spec.Body != nil {
		body = bytes.NewReader(spec.Body)
	}
	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = spec.Header.Clone()

	logrus.Debugf("Provider request: %s %s", spec.Method, spec.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &domain.ProviderHTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return resp, nil
}

// readAll executes a call spec and returns the whole response body
func (a *ClientAdapter) readAll(ctx context.Context, spec *domain.ProviderCallSpec) ([]byte, error) {
	resp, err := a.do(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return data, nil
}

// ChatCompletion sends a non-streaming chat completion request
func (a *ClientAdapter) ChatCompletion(ctx context.Context, call domain.ChatCall) (string, error) {
	spec, err := BuildChatSpec(call, false)
	if err != nil {
		return "", err
	}
	data, err := a.readAll(ctx, spec)
	if err != nil {
		return "", err
	}

	var apiResp chatCompletionAPIResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderParse, err)
	}
	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("%w: no content in response", domain.ErrProviderParse)
	}

	logrus.Infof("Chat completion successful, model: %s, tokens: %d", apiResp.Model, apiResp.Usage.TotalTokens)

	return *apiResp.Choices[0].Message.Content, nil
}

// GenerateImage sends an image generation request and returns the image URL
func (a *ClientAdapter) GenerateImage(ctx context.Context, call domain.ImageCall) (string, error) {
	spec, err := BuildImageSpec(call)
	if err != nil {
		return "", err
	}
	data, err := a.readAll(ctx, spec)
	if err != nil {
		return "", err
	}

	var apiResp imageGenerationAPIResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderParse, err)
	}
	if len(apiResp.Data) == 0 || apiResp.Data[0].URL == nil || *apiResp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: no image URL in response", domain.ErrProviderParse)
	}
	return *apiResp.Data[0].URL, nil
}

// Transcribe uploads an audio file and returns the raw transcript
func (a *ClientAdapter) Transcribe(ctx context.Context, call domain.TranscriptionCall) (string, error) {
	spec, err := BuildTranscriptionSpec(call)
	if err != nil {
		return "", err
	}
	data, err := a.readAll(ctx, spec)
	if err != nil {
		return "", err
	}

	var apiResp transcriptionAPIResponse
	if json.Unmarshal(data, &apiResp) == nil && apiResp.Text != nil {
		return *apiResp.Text, nil
	}
	return strings.TrimSpace(string(data)), nil
}

// Synthesize sends a speech request and returns the audio bytes
func (a *ClientAdapter) Synthesize(ctx context.Context, call domain.SpeechCall) ([]byte, error) {
	spec, err := BuildSpeechSpec(call)
	if err != nil {
		return nil, err
	}
	data, err := a.readAll(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty audio response", domain.ErrProviderParse)
	}
	return data, nil
}

// ListModels queries the models endpoint
func (a *ClientAdapter) ListModels(ctx context.Context, target domain.ProviderTarget) ([]domain.ModelInfo, error) {
	spec, err := BuildModelsSpec(target)
	if err != nil {
		return nil, err
	}
	data, err := a.readAll(ctx, spec)
	if err != nil {
		return nil, err
	}

	var modelsResp modelsResponse
	if err := json.Unmarshal(data, &modelsResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderParse, err)
	}

	models := make([]domain.ModelInfo, len(modelsResp.Data))
	for i, m := range modelsResp.Data {
		models[i] = domain.ModelInfo{
			ID:      m.ID,
			Object:  m.Object,
			OwnedBy: m.OwnedBy,
		}
	}

	logrus.Infof("Listed %d models", len(models))

	return models, nil
}
