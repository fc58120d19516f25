// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
//              with BOOLE_* environment overrides
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	mdwconfig "github.com/msto63/boole/foundation/core/config"
	mdwerror "github.com/msto63/boole/foundation/core/error"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BOOLE_SERVER_PORT
const EnvPrefix = "BOOLE"

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = "BOOLE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Store   StoreConfig   `toml:"store" yaml:"store"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	Logic   LogicConfig   `toml:"logic" yaml:"logic"`

	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// ServerConfig holds HTTP and WebSocket server settings
type ServerConfig struct {
	Host         string   `toml:"host" yaml:"host"`
	Port         int      `toml:"port" yaml:"port"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// StoreConfig holds evaluation history storage settings
type StoreConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Type    string `toml:"type" yaml:"type"` // sqlite or memory
	Path    string `toml:"path" yaml:"path"`
}

// CacheConfig holds result cache settings
type CacheConfig struct {
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// LogicConfig holds engine limits
type LogicConfig struct {
	MaxExpressionLength int `toml:"max_expression_length" yaml:"max_expression_length"`
	MaxVariables        int `toml:"max_variables" yaml:"max_variables"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration with environment overrides
func Default() *Config {
	cfg := &Config{}
	if env, err := mdwconfig.LoadFromString("", mdwconfig.FormatTOML, EnvPrefix); err == nil {
		cfg.applyOverrides(env)
	}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	raw, err := mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := decode(path, raw.Format(), &cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to decode config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}
	cfg.source = path

	cfg.applyOverrides(raw)
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by BOOLE_CONFIG, else the first default
// location that exists, else the built-in defaults
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./configs/config.yaml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "boole", "config.toml"))
	}
	return paths
}

func decode(path string, format mdwconfig.Format, cfg *Config) error {
	switch format {
	case mdwconfig.FormatYAML:
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(content, cfg)
	default:
		_, err := toml.DecodeFile(path, cfg)
		return err
	}
}

// applyOverrides copies values present in the environment onto the typed
// config; file values are already decoded
func (c *Config) applyOverrides(raw *mdwconfig.Config) {
	overrideString := func(key string, dst *string) {
		if os.Getenv(raw.EnvKey(key)) != "" {
			*dst = raw.GetString(key)
		}
	}
	overrideInt := func(key string, dst *int) {
		if os.Getenv(raw.EnvKey(key)) != "" {
			*dst = raw.GetInt(key, *dst)
		}
	}
	overrideDuration := func(key string, dst *Duration) {
		if os.Getenv(raw.EnvKey(key)) != "" {
			dst.Duration = raw.GetDuration(key, dst.Duration)
		}
	}

	overrideString("general.environment", &c.General.Environment)
	overrideString("general.data_dir", &c.General.DataDir)
	overrideString("general.log_level", &c.General.LogLevel)
	overrideString("general.log_format", &c.General.LogFormat)

	overrideString("server.host", &c.Server.Host)
	overrideInt("server.port", &c.Server.Port)
	overrideDuration("server.read_timeout", &c.Server.ReadTimeout)
	overrideDuration("server.write_timeout", &c.Server.WriteTimeout)

	if os.Getenv(raw.EnvKey("store.enabled")) != "" {
		c.Store.Enabled = raw.GetBool("store.enabled", c.Store.Enabled)
	}
	overrideString("store.type", &c.Store.Type)
	overrideString("store.path", &c.Store.Path)

	overrideInt("cache.max_items", &c.Cache.MaxItems)
	overrideDuration("cache.ttl", &c.Cache.TTL)

	overrideInt("logic.max_expression_length", &c.Logic.MaxExpressionLength)
	overrideInt("logic.max_variables", &c.Logic.MaxVariables)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "boole"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 15 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 30 * time.Second
	}

	// Store
	if c.Store.Type == "" {
		c.Store.Type = "sqlite"
	}
	if c.Store.Path == "" {
		c.Store.Path = filepath.Join(c.General.DataDir, "history.db")
	}

	// Cache
	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 1000
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 10 * time.Minute
	}

	// Logic
	if c.Logic.MaxExpressionLength == 0 {
		c.Logic.MaxExpressionLength = 4096
	}
	if c.Logic.MaxVariables == 0 {
		c.Logic.MaxVariables = 16
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Store.Path = os.ExpandEnv(c.Store.Path)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var problems []string
	check := func(name string, v, min, max int) {
		if v < min || v > max {
			problems = append(problems, fmt.Sprintf("%s=%d not in [%d, %d]", name, v, min, max))
		}
	}
	check("server.port", c.Server.Port, 1, 65535)
	check("cache.max_items", c.Cache.MaxItems, 1, 1000000)
	check("logic.max_expression_length", c.Logic.MaxExpressionLength, 1, 1<<20)
	check("logic.max_variables", c.Logic.MaxVariables, 0, 24)

	if c.Store.Type != "sqlite" && c.Store.Type != "memory" {
		problems = append(problems, fmt.Sprintf("store.type=%q must be sqlite or memory", c.Store.Type))
	}

	if len(problems) == 0 {
		return nil
	}
	return mdwerror.Newf("invalid configuration: %v", problems).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate")
}

// Source returns the file the configuration was loaded from, or "" for defaults
func (c *Config) Source() string {
	return c.source
}

// Address returns the server listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
