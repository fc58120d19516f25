// File: config.go
// Title: Core Configuration Management Implementation
// Description: Loads TOML and YAML configuration files into a tree with
//              dot-path access. Environment variables named after a key
//              take precedence over the file.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Watching and discovery removed
// - 2026-10-16 v0.3.0: Single lookup path for all getters, range rules
//                      moved to the typed configuration

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
)

// Format is a configuration file syntax
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	// FormatAuto picks the syntax from the file extension
	FormatAuto
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

// DetectFormat returns FormatYAML for .yaml and .yml files, FormatTOML otherwise
func DetectFormat(filePath string) Format {
	if ext := strings.ToLower(filepath.Ext(filePath)); ext == ".yaml" || ext == ".yml" {
		return FormatYAML
	}
	return FormatTOML
}

type tree = map[string]interface{}

// Config is a parsed configuration. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      tree
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions controls LoadWithOptions
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	// Defaults are top-level entries used where the file has none
	Defaults map[string]interface{}
}

// Load reads filePath with the format taken from its extension
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions reads and parses filePath. A missing file fails with
// NOT_FOUND, unparsable content with INVALID_CONFIG.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation(op)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	data, err := parse(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	for k, v := range options.Defaults {
		if _, ok := data[k]; !ok {
			data[k] = v
		}
	}

	return &Config{data: data, filePath: filePath, format: format, envPrefix: options.EnvPrefix}, nil
}

// LoadFromString parses content. FormatAuto is treated as TOML.
func LoadFromString(content string, format Format, envPrefix string) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	data, err := parse([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return &Config{data: data, format: format, envPrefix: envPrefix}, nil
}

func parse(content []byte, format Format) (tree, error) {
	data := tree{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if data == nil {
		// an empty YAML document decodes to nil
		data = tree{}
	}
	return data, nil
}

// EnvKey returns the environment variable for key: server.port with
// prefix boole is BOOLE_SERVER_PORT
func (c *Config) EnvKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return strings.ToUpper(c.envPrefix) + "_" + name
}

// value returns the environment value of key if set, else the file value
func (c *Config) value(key string) interface{} {
	if env := os.Getenv(c.EnvKey(key)); env != "" {
		return env
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fileValue(key)
}

// GetString returns key as a string. Non-string values are formatted
// with %v.
func (c *Config) GetString(key string, defaultValue ...string) string {
	switch v := c.value(key).(type) {
	case nil:
		return first(defaultValue)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// GetInt returns key as an int, or the default if it is missing or not a
// number
func (c *Config) GetInt(key string, defaultValue ...int) int {
	switch v := c.value(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return first(defaultValue)
}

// GetBool returns key as a bool, or the default if it is missing or not
// a boolean
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	switch v := c.value(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return first(defaultValue)
}

// GetDuration returns key as a duration written like "30s" or "5m". Bare
// integers are nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	switch v := c.value(key).(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int64:
		return time.Duration(v)
	case int:
		return time.Duration(v)
	}
	return first(defaultValue)
}

// GetStringSlice returns key as a list of strings. A single string becomes
// a one-element list. The environment is not consulted.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	value := c.fileValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	case string:
		return []string{v}
	}
	return first(defaultValue)
}

// fileValue walks the tree; the caller holds c.mu
func (c *Config) fileValue(key string) interface{} {
	node := c.data
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(tree)
		if !ok {
			return nil
		}
		node = next
	}
	return node[parts[len(parts)-1]]
}

func first[T any](values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[0]
}

// Has reports whether key is set in the file or the environment
func (c *Config) Has(key string) bool {
	return c.value(key) != nil
}

// Set stores value under key, creating intermediate tables
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := c.data
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(tree)
		if !ok {
			next = tree{}
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// Keys returns every leaf key in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, node tree)
	walk = func(prefix string, node tree) {
		for k, v := range node {
			if prefix != "" {
				k = prefix + "." + k
			}
			if sub, ok := v.(tree); ok {
				walk(k, sub)
			} else {
				keys = append(keys, k)
			}
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// FilePath returns the file the configuration was read from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the syntax the configuration was parsed as
func (c *Config) Format() Format {
	return c.format
}
