package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Hour != 21 {
		t.Fatalf("expected default hour 21, got %d", cfg.Hour)
	}
	if cfg.QueryWordCount != 8 {
		t.Fatalf("expected default word count 8, got %d", cfg.QueryWordCount)
	}
	if cfg.HasParentOverride() {
		t.Fatal("expected no parent override by default")
	}
	if cfg.JournalPath != "" {
		t.Fatalf("expected journal disabled by default, got %q", cfg.JournalPath)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "hour: 9\nquery_word_count: 4\nparent_override_minutes: 2.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hour != 9 {
		t.Fatalf("expected hour 9 from file, got %d", cfg.Hour)
	}
	if cfg.QueryWordCount != 4 {
		t.Fatalf("expected word count 4 from file, got %d", cfg.QueryWordCount)
	}
	if !cfg.HasParentOverride() || cfg.ParentOverrideMinutes != 2.5 {
		t.Fatalf("expected override 2.5, got %f", cfg.ParentOverrideMinutes)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hour: 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WATCHLOOP_HOUR", "23")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hour != 23 {
		t.Fatalf("expected env to win, got hour %d", cfg.Hour)
	}
}

func TestLoadRejectsBadHour(t *testing.T) {
	t.Setenv("WATCHLOOP_HOUR", "24")

	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error for hour 24")
	}
}

func TestLoadRejectsZeroWordCount(t *testing.T) {
	t.Setenv("WATCHLOOP_QUERY_WORD_COUNT", "0")

	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error for zero word count")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
