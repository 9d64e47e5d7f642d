package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("EDTREE_API_KEY", "")
	t.Setenv("MAX_DOCUMENT_BYTES", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected port %q, got %q", "8091", cfg.Port)
	}
	if cfg.MaxDocumentBytes != 5242880 {
		t.Errorf("expected default max bytes, got %d", cfg.MaxDocumentBytes)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected missing API key to fail validation")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("EDTREE_API_KEY", "secret")
	t.Setenv("MAX_DOCUMENT_BYTES", "1024")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" || cfg.APIKey != "secret" || cfg.MaxDocumentBytes != 1024 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_DOCUMENT_BYTES", "-5")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := Load()
	if cfg.MaxDocumentBytes != 5242880 {
		t.Errorf("expected default max bytes, got %d", cfg.MaxDocumentBytes)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestValidate_NonNumericPort(t *testing.T) {
	cfg := Config{Port: "http", APIKey: "k"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}
