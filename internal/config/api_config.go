package config

import (
	"path/filepath"
	"time"
)

// APIConfig describes how to reach the back-office REST backend.
type APIConfig interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
	GetTokenFile() string
}

type API struct{}

var _ APIConfig = API{}

// GetBaseURL returns the backend base URL, e.g. "http://127.0.0.1:8000/api".
func (API) GetBaseURL() string {
	return GetEnv("API_BASE_URL", "http://127.0.0.1:8000/api")
}

// GetRequestTimeout bounds every backend call, renewal included.
func (a API) GetRequestTimeout() time.Duration {
	raw := GetEnv("API_TIMEOUT", "8s")
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 8 * time.Second
	}
	return d
}

// GetTokenFile is where the credential pair is persisted between runs.
func (a API) GetTokenFile() string {
	if f := GetEnv("TOKEN_FILE", ""); f != "" {
		return f
	}
	return filepath.Join(EnvVars{}.GetDataFolder(), "tokens.json")
}
