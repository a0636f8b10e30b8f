package cliconfig

import (
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		changed map[string]bool
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"D12PACK_OUT_DIR":   "/env/out",
				"D12PACK_ID":        "env",
				"D12PACK_STYLE":     "ENV",
				"D12PACK_MAX_PIP":   "9",
				"D12PACK_PREVIEW":   "1,2",
				"D12PACK_LOG_LEVEL": "warn",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.OutDir != "/env/out" {
					t.Errorf("OutDir = %v, want /env/out", cfg.OutDir)
				}
				if cfg.ID != "env" || cfg.StyleTag != "ENV" {
					t.Errorf("ID/StyleTag = %v/%v", cfg.ID, cfg.StyleTag)
				}
				if cfg.MaxPip != 9 {
					t.Errorf("MaxPip = %v, want 9", cfg.MaxPip)
				}
				if cfg.Preview != "1,2" {
					t.Errorf("Preview = %v, want 1,2", cfg.Preview)
				}
				if cfg.LogLevel != "warn" {
					t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
				}
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"D12PACK_OUT_DIR": "/env/out",
				"D12PACK_NAME":    "Env Name",
			},
			changed: map[string]bool{"out-dir": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.OutDir != DefaultConfig().OutDir {
					t.Errorf("OutDir = %v, flag value should win", cfg.OutDir)
				}
				if cfg.Name != "Env Name" {
					t.Errorf("Name = %v, want Env Name", cfg.Name)
				}
			},
		},
		{
			name: "max pip zero from env",
			envVars: map[string]string{
				"D12PACK_MAX_PIP": "0",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.MaxPip != 0 {
					t.Errorf("MaxPip = %v, want 0", cfg.MaxPip)
				}
			},
		},
		{
			name: "returns error for invalid max pip",
			envVars: map[string]string{
				"D12PACK_MAX_PIP": "lots",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
