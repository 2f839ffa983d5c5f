package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("Port = %s, want 8081", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %s, want memory", cfg.DataBackend)
	}
	if cfg.DefaultOwner != "test-user-id" {
		t.Errorf("DefaultOwner = %s, want test-user-id", cfg.DefaultOwner)
	}
	if cfg.CategoryLimit != 10 {
		t.Errorf("CategoryLimit = %d, want 10", cfg.CategoryLimit)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("CATEGORY_LIMIT", "5")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "sqlite" || cfg.CategoryLimit != 5 {
		t.Errorf("Load = %+v, env overrides not applied", cfg)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          "8081",
			DataBackend:   "memory",
			SQLiteDBPath:  "./data/test.db",
			PrefsPath:     "./data/prefs.json",
			DefaultOwner:  "test-user-id",
			CategoryLimit: 10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"unknown backend", func(c *Config) { c.DataBackend = "mongo" }, "invalid data backend"},
		{"empty prefs path", func(c *Config) { c.PrefsPath = "" }, "preferences path"},
		{"empty owner", func(c *Config) { c.DefaultOwner = "" }, "default owner"},
		{"zero category limit", func(c *Config) { c.CategoryLimit = 0 }, "category limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{Port: "bad", DataBackend: "mongo", PrefsPath: "", DefaultOwner: "", CategoryLimit: 0}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "preferences path", "default owner", "category limit"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}
