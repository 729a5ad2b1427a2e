package settings

import (
	"ai-anywhere/configs"
	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"
)

var (
	_ output.SettingsProvider   = (*ViperSettings)(nil)
	_ output.CredentialProvider = (*ViperSettings)(nil)
)

// ViperSettings struct - Output adapter reading provider settings from the live config.
// Every call takes a fresh snapshot, so edits picked up by the config watcher
// apply to the next operation.
type ViperSettings struct {
	source func() *configs.Config
}

// NewViperSettings func - Creates settings backed by configs.GetViper
func NewViperSettings() *ViperSettings {
	return &ViperSettings{source: configs.GetViper}
}

// Settings returns the provider snapshot for one operation
func (s *ViperSettings) Settings() domain.ProviderSettings {
	cfg := s.source()
	overrides := make(map[string]string, len(cfg.Prompts))
	for k, v := range cfg.Prompts {
		overrides[k] = v
	}
	return domain.ProviderSettings{
		BaseURL:         cfg.Provider.BaseURL,
		LLMModel:        cfg.Provider.LLMModel,
		ImageModel:      cfg.Provider.ImageModel,
		AudioModel:      cfg.Provider.AudioModel,
		TTSModel:        cfg.Provider.TTSModel,
		MaxTokens:       cfg.Provider.MaxTokens,
		Temperature:     cfg.Provider.Temperature,
		Debug:           cfg.Provider.Debug || cfg.App.Debug,
		PromptOverrides: overrides,
	}
}

// APIKey returns the configured key; blank means none is configured
func (s *ViperSettings) APIKey() (string, error) {
	return s.source().Provider.APIKey, nil
}
