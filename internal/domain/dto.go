package domain

import "net/http"

// DTOs (Data Transfer Objects) - provider call structures

type (
	// ProviderSettings struct - read-only snapshot of provider configuration for one call
	ProviderSettings struct {
		BaseURL         string
		LLMModel        string
		ImageModel      string
		AudioModel      string
		TTSModel        string
		MaxTokens       int
		Temperature     float64
		Debug           bool
		PromptOverrides map[string]string
	}

	// ProviderTarget struct - where and as whom a call is made
	ProviderTarget struct {
		BaseURL string
		APIKey  string
	}

	// ChatCall struct - chat completion request for text operations
	ChatCall struct {
		Target       ProviderTarget
		Model        string
		SystemPrompt string
		UserPrompt   string
		MaxTokens    int
		Temperature  float64
	}

	// ImageCall struct - image generation request
	ImageCall struct {
		Target    ProviderTarget
		Model     string
		Prompt    string
		SizeLabel string
		Quality   string
		Style     string
	}

	// TranscriptionCall struct - speech-to-text request
	TranscriptionCall struct {
		Target    ProviderTarget
		Model     string
		AudioPath string
		Language  string
	}

	// SpeechCall struct - text-to-speech request
	SpeechCall struct {
		Target   ProviderTarget
		Model    string
		Input    string
		Voice    string
		Format   string
		Speed    float64
		Language string
	}

	// ProviderCallSpec struct - fully resolved outbound HTTP call
	ProviderCallSpec struct {
		Method string
		URL    string
		Header http.Header
		Body   []byte
	}

	// StreamOutcome struct - what a streaming chat call produced
	StreamOutcome struct {
		Content         string
		SkippedPayloads int
	}

	// ModelInfo struct - model advertised by the provider
	ModelInfo struct {
		ID      string `json:"id"`
		Object  string `json:"object,omitempty"`
		OwnedBy string `json:"owned_by,omitempty"`
	}

	// HistoryQuery struct - history listing filter
	HistoryQuery struct {
		Search string
		Limit  int
		Offset int
	}
)
