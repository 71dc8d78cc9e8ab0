package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("QUOTES_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.QuotesPath != defaultQuotesPath {
		t.Fatalf("QuotesPath=%q, want %q", cfg.QuotesPath, defaultQuotesPath)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("Port=%q, want %q", cfg.Port, defaultPort)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("QUOTES_PATH", "/data/quotes.json")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.QuotesPath != "/data/quotes.json" {
		t.Fatalf("QuotesPath=%q, want %q", cfg.QuotesPath, "/data/quotes.json")
	}
	if cfg.Port != "9090" {
		t.Fatalf("Port=%q, want %q", cfg.Port, "9090")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, "debug")
	}
}
