package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	six := 6
	zero := 0

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		check      func(t *testing.T, cfg Config)
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				OutDir:   "/tmp/packs/neon",
				ID:       "neon",
				Name:     "Neon",
				StyleTag: "NEON",
				Author:   "Someone",
				License:  "CC-BY-4.0",
				MaxPip:   &six,
				Preview:  "6,6",
				LogLevel: "debug",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.OutDir != "/tmp/packs/neon" {
					t.Errorf("OutDir = %v", cfg.OutDir)
				}
				if cfg.ID != "neon" || cfg.Name != "Neon" || cfg.StyleTag != "NEON" {
					t.Errorf("identity = %v/%v/%v", cfg.ID, cfg.Name, cfg.StyleTag)
				}
				if cfg.Author != "Someone" || cfg.License != "CC-BY-4.0" {
					t.Errorf("author/license = %v/%v", cfg.Author, cfg.License)
				}
				if cfg.MaxPip != 6 {
					t.Errorf("MaxPip = %v, want 6", cfg.MaxPip)
				}
				if cfg.Preview != "6,6" {
					t.Errorf("Preview = %v, want 6,6", cfg.Preview)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
				}
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				OutDir: "/config/out",
				ID:     "config-id",
				MaxPip: &zero,
			},
			changed: map[string]bool{"out-dir": true, "max-pip": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.OutDir != DefaultConfig().OutDir {
					t.Errorf("OutDir = %v, flag value should win", cfg.OutDir)
				}
				if cfg.ID != "config-id" {
					t.Errorf("ID = %v, want config-id", cfg.ID)
				}
				if cfg.MaxPip != 12 {
					t.Errorf("MaxPip = %v, flag value should win", cfg.MaxPip)
				}
			},
		},
		{
			name: "max pip zero is applied",
			fileConfig: FileConfig{
				MaxPip: &zero,
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.MaxPip != 0 {
					t.Errorf("MaxPip = %v, want 0", cfg.MaxPip)
				}
			},
		},
		{
			name: "theme overrides merge onto defaults",
			fileConfig: FileConfig{
				Theme: ThemeFile{Ink: "#ff00ff", PipOpacity: 0.5},
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Theme.Ink != "#ff00ff" {
					t.Errorf("Ink = %v", cfg.Theme.Ink)
				}
				if cfg.Theme.PipOpacity != 0.5 {
					t.Errorf("PipOpacity = %v", cfg.Theme.PipOpacity)
				}
				if cfg.Theme.GradientTop != DefaultConfig().Theme.GradientTop {
					t.Errorf("GradientTop = %v, want default", cfg.Theme.GradientTop)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "d12pack.toml")

	tomlContent := `
out_dir = "packs/neon"
id = "neon"
style_tag = "NEON"
max_pip = 9
preview = "9,9"

[theme]
ink = "#22d3ee"
gradient_top = "#0b1020"
label_opacity = 0.5
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.OutDir != "packs/neon" {
		t.Errorf("OutDir = %v, want packs/neon", fc.OutDir)
	}
	if fc.StyleTag != "NEON" {
		t.Errorf("StyleTag = %v, want NEON", fc.StyleTag)
	}
	if fc.MaxPip == nil || *fc.MaxPip != 9 {
		t.Errorf("MaxPip = %v, want 9", fc.MaxPip)
	}
	if fc.Preview != "9,9" {
		t.Errorf("Preview = %v, want 9,9", fc.Preview)
	}
	if fc.Theme.Ink != "#22d3ee" || fc.Theme.GradientTop != "#0b1020" {
		t.Errorf("Theme = %+v", fc.Theme)
	}
	if fc.Theme.LabelOpacity != 0.5 {
		t.Errorf("LabelOpacity = %v, want 0.5", fc.Theme.LabelOpacity)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("max_pip = \"twelve\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() expected error for wrong type")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x")
	if FileExists(p) {
		t.Errorf("FileExists(%s) = true before create", p)
	}
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(p) {
		t.Errorf("FileExists(%s) = false after create", p)
	}
}
