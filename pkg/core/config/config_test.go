package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/boole/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"General.Name", cfg.General.Name, "boole"},
		{"General.Environment", cfg.General.Environment, "development"},
		{"General.LogLevel", cfg.General.LogLevel, "info"},
		{"General.LogFormat", cfg.General.LogFormat, "json"},
		{"Server.Host", cfg.Server.Host, "127.0.0.1"},
		{"Server.Port", cfg.Server.Port, 8080},
		{"Server.ReadTimeout", cfg.Server.ReadTimeout.Duration, 15 * time.Second},
		{"Store.Type", cfg.Store.Type, "sqlite"},
		{"Store.Path", cfg.Store.Path, filepath.Join("./data", "history.db")},
		{"Cache.MaxItems", cfg.Cache.MaxItems, 1000},
		{"Cache.TTL", cfg.Cache.TTL.Duration, 10 * time.Minute},
		{"Logic.MaxExpressionLength", cfg.Logic.MaxExpressionLength, 4096},
		{"Logic.MaxVariables", cfg.Logic.MaxVariables, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestConfig_applyDefaults_PreservesValues(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 9999},
		Logic:  LogicConfig{MaxVariables: 8},
	}
	cfg.applyDefaults()

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Logic.MaxVariables != 8 {
		t.Errorf("Logic.MaxVariables = %d, want 8", cfg.Logic.MaxVariables)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[general]
log_level = "debug"

[server]
port = 9090
read_timeout = "5s"

[store]
enabled = true
type = "memory"

[logic]
max_variables = 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Server.Port != 9090 || cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if !cfg.Store.Enabled || cfg.Store.Type != "memory" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Logic.MaxVariables != 10 {
		t.Errorf("Logic.MaxVariables = %d, want 10", cfg.Logic.MaxVariables)
	}
	if cfg.Source() != path {
		t.Errorf("Source() = %q, want %q", cfg.Source(), path)
	}
	if cfg.Address() != "127.0.0.1:9090" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  host: 0.0.0.0
  port: 7070
cache:
  max_items: 50
  ttl: 1m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 7070 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Cache.MaxItems != 50 || cfg.Cache.TTL.Duration != time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeFile(t, "config.toml", "[server]\nport = 9090\n")
	t.Setenv("BOOLE_SERVER_PORT", "9191")
	t.Setenv("BOOLE_STORE_ENABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191", cfg.Server.Port)
	}
	if !cfg.Store.Enabled {
		t.Error("Store.Enabled should be overridden to true")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code mdwerror.Code
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, mdwerror.CodeNotFound},
		{"syntax error", func(t *testing.T) string { return writeFile(t, "bad.toml", "[server\nport = ") }, mdwerror.CodeInvalidConfig},
		{"port out of range", func(t *testing.T) string { return writeFile(t, "port.toml", "[server]\nport = 70000\n") }, mdwerror.CodeInvalidConfig},
		{"unknown store type", func(t *testing.T) string { return writeFile(t, "store.toml", "[store]\ntype = \"redis\"\n") }, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[general]\nenvironment = \"test\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Environment != "test" {
		t.Errorf("General.Environment = %q, want test", cfg.General.Environment)
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("BOOLE_LOGIC_MAX_VARIABLES", "4")

	cfg := Default()
	if cfg.Source() != "" {
		t.Errorf("Source() = %q, want empty", cfg.Source())
	}
	if cfg.Logic.MaxVariables != 4 {
		t.Errorf("Logic.MaxVariables = %d, want 4", cfg.Logic.MaxVariables)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
