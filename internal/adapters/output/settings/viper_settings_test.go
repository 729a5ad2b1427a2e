package settings

import (
	"testing"

	"ai-anywhere/configs"
)

// TestSettings_MapsProviderConfig tests that provider config maps onto ProviderSettings
func TestSettings_MapsProviderConfig(t *testing.T) {
	cfg := &configs.Config{
		App: configs.App{Debug: true},
		Provider: configs.Provider{
			BaseURL:     "http://localhost:1234",
			APIKey:      "sk-local",
			LLMModel:    "qwen",
			TTSModel:    "tts-1",
			MaxTokens:   1024,
			Temperature: 0.2,
		},
		Prompts: map[string]string{"textrewrite": "Rewrite."},
	}
	s := &ViperSettings{source: func() *configs.Config { return cfg }}

	got := s.Settings()

	if got.BaseURL != "http://localhost:1234" || got.LLMModel != "qwen" || got.MaxTokens != 1024 {
		t.Errorf("unexpected settings: %+v", got)
	}
	if !got.Debug {
		t.Error("expected app debug to enable provider debug")
	}
	if got.PromptOverrides["textrewrite"] != "Rewrite." {
		t.Errorf("expected prompt override, got: %v", got.PromptOverrides)
	}

	got.PromptOverrides["textrewrite"] = "changed"
	if cfg.Prompts["textrewrite"] != "Rewrite." {
		t.Error("expected settings snapshot to be independent of the config")
	}

	key, err := s.APIKey()
	if err != nil || key != "sk-local" {
		t.Errorf("expected key sk-local, got: %q (%v)", key, err)
	}
}

// TestSettings_ReadsEveryCall tests that settings follow config changes between calls
func TestSettings_ReadsEveryCall(t *testing.T) {
	cfg := &configs.Config{Provider: configs.Provider{LLMModel: "first"}}
	s := &ViperSettings{source: func() *configs.Config { return cfg }}

	s.Settings()
	cfg = &configs.Config{Provider: configs.Provider{LLMModel: "second"}}

	if got := s.Settings().LLMModel; got != "second" {
		t.Errorf("expected reloaded model 'second', got: %s", got)
	}
}
