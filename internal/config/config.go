package config

import "os"

const (
	defaultQuotesPath = "./quotes.json"
	defaultPort       = "8080"
	defaultLogLevel   = "info"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	QuotesPath string
	Port       string
	LogLevel   string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		QuotesPath: os.Getenv("QUOTES_PATH"),
		Port:       os.Getenv("PORT"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	if cfg.QuotesPath == "" {
		cfg.QuotesPath = defaultQuotesPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg
}
