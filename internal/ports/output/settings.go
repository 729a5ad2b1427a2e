package output

import "ai-anywhere/internal/domain"

// SettingsProvider interface - Output port
// Returns a snapshot of the provider configuration. Callers take one
// snapshot per operation so a reload never changes a call in flight.
type SettingsProvider interface {
	Settings() domain.ProviderSettings
}

// CredentialProvider interface - Output port
// Supplies the plaintext API key at call time. An empty key means none is configured.
type CredentialProvider interface {
	APIKey() (string, error)
}
