package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.LogLevel != "info" || cfg.MaxAttempts != 1000 || !cfg.Sound {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BINGO_ADDR", "127.0.0.1:9000")
	t.Setenv("BINGO_SEED", "77")
	t.Setenv("BINGO_LANG", "ja")
	t.Setenv("BINGO_SOUND", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.Seed != 77 || cfg.Lang != "ja" || cfg.Sound {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("BINGO_MAX_ATTEMPTS", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
