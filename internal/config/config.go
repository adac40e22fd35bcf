package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	APIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetDataFolder() string
}

type mainConfig struct {
	EnvVars
	API
}

// New loads a .env file when present and returns the composed configuration.
func New() Config {
	_ = godotenv.Load()
	return mainConfig{}
}
