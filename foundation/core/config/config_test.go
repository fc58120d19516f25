// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, dot-path access, environment
//              overrides and runtime updates.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-16

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/boole/foundation/core/error"
)

const tomlContent = `
[server]
host = "127.0.0.1"
port = 8090
read_timeout = "15s"

[logic]
max_variables = 12
features = ["dnf", "cnf"]

[store]
enabled = true
`

const yamlContent = `
server:
  host: 127.0.0.1
  port: 8090
logic:
  max_variables: 12
store:
  enabled: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantFormat Format
	}{
		{"toml", "config.toml", tomlContent, FormatTOML},
		{"yaml", "config.yaml", yamlContent, FormatYAML},
		{"yml", "config.yml", yamlContent, FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Format() != tt.wantFormat {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.wantFormat)
			}
			if got := cfg.GetString("server.host"); got != "127.0.0.1" {
				t.Errorf("server.host = %q", got)
			}
			if got := cfg.GetInt("server.port"); got != 8090 {
				t.Errorf("server.port = %d", got)
			}
			if got := cfg.GetInt("logic.max_variables"); got != 12 {
				t.Errorf("logic.max_variables = %d", got)
			}
			if !cfg.GetBool("store.enabled") {
				t.Error("store.enabled should be true")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("empty path: got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := Load(missing); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file: got %v", err)
	}

	broken := writeFile(t, "broken.toml", "[server\nport = ")
	if _, err := Load(broken); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("broken file: got %v", err)
	}
}

func TestGettersWithDefaults(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML, "")
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetDuration("server.read_timeout"); got != 15*time.Second {
		t.Errorf("read_timeout = %v", got)
	}
	if got := cfg.GetDuration("server.write_timeout", time.Minute); got != time.Minute {
		t.Errorf("write_timeout default = %v", got)
	}
	if got := cfg.GetString("general.name", "boole"); got != "boole" {
		t.Errorf("general.name default = %q", got)
	}
	if got := cfg.GetStringSlice("logic.features"); !reflect.DeepEqual(got, []string{"dnf", "cnf"}) {
		t.Errorf("logic.features = %v", got)
	}
	if cfg.Has("server.missing") {
		t.Error("Has() should be false for a missing key")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML, "boole")
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if key := cfg.EnvKey("server.port"); key != "BOOLE_SERVER_PORT" {
		t.Fatalf("EnvKey() = %q", key)
	}

	t.Setenv("BOOLE_SERVER_PORT", "9999")
	t.Setenv("BOOLE_GENERAL_LOG_LEVEL", "debug")

	if got := cfg.GetInt("server.port"); got != 9999 {
		t.Errorf("server.port = %d, want env value 9999", got)
	}
	if !cfg.Has("general.log_level") {
		t.Error("Has() should see environment-only keys")
	}
	if got := cfg.GetString("general.log_level"); got != "debug" {
		t.Errorf("general.log_level = %q", got)
	}
}

func TestSetAndKeys(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML, "")
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	cfg.Set("cache.ttl", "5m")
	cfg.Set("cache.max_items", 100)
	cfg.Set("general.name", "boole")

	want := []string{"cache.max_items", "cache.ttl", "general.name"}
	if got := cfg.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := cfg.GetInt("cache.max_items"); got != 100 {
		t.Errorf("cache.max_items = %d", got)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", tomlContent)
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:   FormatAuto,
		Defaults: map[string]interface{}{"mode": "strict", "server": "ignored"},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if got := cfg.GetString("mode"); got != "strict" {
		t.Errorf("mode = %q, want default strict", got)
	}
	if got := cfg.GetInt("server.port"); got != 8090 {
		t.Errorf("server.port = %d, file value must win over defaults", got)
	}
}

func TestStringSliceIgnoresEnvironment(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML, "boole")
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	t.Setenv("BOOLE_LOGIC_FEATURES", "nnf")

	if got := cfg.GetStringSlice("logic.features"); !reflect.DeepEqual(got, []string{"dnf", "cnf"}) {
		t.Errorf("logic.features = %v", got)
	}
}
