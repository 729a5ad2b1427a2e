package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"ai-anywhere/internal/domain"
)

// Endpoint suffixes relative to the version-qualified base URL
const (
	chatEndpoint          = "/chat/completions"
	imageEndpoint         = "/images/generations"
	transcriptionEndpoint = "/audio/transcriptions"
	speechEndpoint        = "/audio/speech"
	modelsEndpoint        = "/models"
)

// Provider defaults applied when neither the request nor the configuration sets a value
const (
	defaultImageModel         = "FLUX.1-schnell"
	defaultImageSize          = "512x512"
	defaultImageQuality       = "standard"
	defaultImageStyle         = "vivid"
	defaultTranscriptionModel = "whisper-1"
	defaultAudioFilename      = "audio.mp3"
	defaultVoice              = "alloy"
	defaultSpeechFormat       = "mp3"
	defaultSpeechLanguage     = "pt"
	minSpeechSpeed            = 0.25
	maxSpeechSpeed            = 2.0
)

var versionSegment = regexp.MustCompile(`/v[0-9]+$`)

// BuildURL joins the configured base URL and an endpoint suffix, inserting
// /v1 unless the base already carries a version or an endpoint path.
func BuildURL(baseURL, endpoint string) string {
	base := strings.TrimRight(baseURL, "/")
	if needsVersion(base) {
		return base + "/v1" + endpoint
	}
	return base + endpoint
}

func needsVersion(base string) bool {
	if versionSegment.MatchString(base) {
		return false
	}
	for _, part := range []string{"/chat/", "/images/", "/audio/", "/models"} {
		if strings.Contains(base, part) {
			return false
		}
	}
	return true
}

func authorizedHeader(target domain.ProviderTarget, contentType string) (http.Header, error) {
	key := strings.TrimSpace(target.APIKey)
	if key == "" {
		return nil, domain.ErrMissingAPIKey
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+key)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return header, nil
}

func jsonSpec(target domain.ProviderTarget, endpoint string, body interface{}) (*domain.ProviderCallSpec, error) {
	header, err := authorizedHeader(target, "application/json")
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return &domain.ProviderCallSpec{
		Method: http.MethodPost,
		URL:    BuildURL(target.BaseURL, endpoint),
		Header: header,
		Body:   data,
	}, nil
}

// BuildChatSpec builds a chat completion call with a system and a user message
func BuildChatSpec(call domain.ChatCall, stream bool) (*domain.ProviderCallSpec, error) {
	spec, err := jsonSpec(call.Target, chatEndpoint, chatCompletionAPIRequest{
		Model: call.Model,
		Messages: []chatMessageAPI{
			{Role: "system", Content: call.SystemPrompt},
			{Role: "user", Content: call.UserPrompt},
		},
		MaxTokens:   call.MaxTokens,
		Temperature: call.Temperature,
		Stream:      stream,
	})
	if err != nil {
		return nil, err
	}
	if stream {
		spec.Header.Set("Accept", "text/event-stream")
	}
	return spec, nil
}

// BuildImageSpec builds an image generation call for a single URL result
func BuildImageSpec(call domain.ImageCall) (*domain.ProviderCallSpec, error) {
	return jsonSpec(call.Target, imageEndpoint, imageGenerationAPIRequest{
		Model:          orDefault(call.Model, defaultImageModel),
		Prompt:         call.Prompt,
		Size:           domain.ExtractDimensions(orDefault(call.SizeLabel, defaultImageSize)),
		Quality:        orDefault(call.Quality, defaultImageQuality),
		Style:          orDefault(call.Style, defaultImageStyle),
		ResponseFormat: "url",
		N:              1,
	})
}

// BuildTranscriptionSpec builds the multipart audio upload
func BuildTranscriptionSpec(call domain.TranscriptionCall) (*domain.ProviderCallSpec, error) {
	header, err := authorizedHeader(call.Target, "")
	if err != nil {
		return nil, err
	}
	audio, err := os.ReadFile(call.AudioPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || call.AudioPath == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrAudioFileNotFound, call.AudioPath)
		}
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	filename := filepath.Base(call.AudioPath)
	if filename == "." || filename == string(filepath.Separator) {
		filename = defaultAudioFilename
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	partHeader.Set("Content-Type", "audio/mpeg")
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("failed to write audio: %w", err)
	}
	fields := [][2]string{
		{"model", orDefault(call.Model, defaultTranscriptionModel)},
		{"response_format", "text"},
	}
	if call.Language != "" && call.Language != "auto" {
		fields = append(fields, [2]string{"language", call.Language})
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("failed to write %s field: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	header.Set("Content-Type", writer.FormDataContentType())
	return &domain.ProviderCallSpec{
		Method: http.MethodPost,
		URL:    BuildURL(call.Target.BaseURL, transcriptionEndpoint),
		Header: header,
		Body:   body.Bytes(),
	}, nil
}

// BuildSpeechSpec builds a text-to-speech call
func BuildSpeechSpec(call domain.SpeechCall) (*domain.ProviderCallSpec, error) {
	if strings.TrimSpace(call.Input) == "" {
		return nil, domain.ErrEmptyInput
	}
	return jsonSpec(call.Target, speechEndpoint, speechAPIRequest{
		Model:          call.Model,
		Input:          call.Input,
		Voice:          orDefault(call.Voice, defaultVoice),
		ResponseFormat: orDefault(call.Format, defaultSpeechFormat),
		Speed:          ClampSpeed(call.Speed),
		Language:       orDefault(call.Language, defaultSpeechLanguage),
	})
}

// BuildModelsSpec builds the model listing call
func BuildModelsSpec(target domain.ProviderTarget) (*domain.ProviderCallSpec, error) {
	header, err := authorizedHeader(target, "")
	if err != nil {
		return nil, err
	}
	return &domain.ProviderCallSpec{
		Method: http.MethodGet,
		URL:    BuildURL(target.BaseURL, modelsEndpoint),
		Header: header,
	}, nil
}

// ClampSpeed keeps a speech speed inside [0.25, 2.0]; NaN means normal speed
func ClampSpeed(speed float64) float64 {
	switch {
	case math.IsNaN(speed):
		return 1.0
	case speed < minSpeechSpeed:
		return minSpeechSpeed
	case speed > maxSpeechSpeed:
		return maxSpeechSpeed
	default:
		return speed
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
