package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  dot: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("FITCAL_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Dot != "#0000FF" {
		t.Errorf("Expected dot to be #0000FF, got %s", cfg.ColorScheme.Dot)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemePresetOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, []byte("theme:\n  preset: monochrome\n  today: \"#123456\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("FITCAL_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	mono := MonochromeColorScheme()
	if cfg.ColorScheme.Preset != "monochrome" {
		t.Errorf("Preset = %s, want monochrome", cfg.ColorScheme.Preset)
	}
	if cfg.ColorScheme.Accent != mono.Accent {
		t.Errorf("Accent = %s, want monochrome accent %s", cfg.ColorScheme.Accent, mono.Accent)
	}
	if cfg.ColorScheme.Today != "#123456" {
		t.Errorf("Today = %s, want override #123456", cfg.ColorScheme.Today)
	}
}

func TestApplyDefaults_PartialScheme(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#ABCDEF"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#ABCDEF" {
		t.Errorf("custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.Subtle != MonochromeColorScheme().Subtle {
		t.Errorf("Subtle = %s, want monochrome default", scheme.Subtle)
	}
}
