// File: config.go
// Title: Configuration Management
// Description: Loads TOML and YAML configuration with dot-path access,
//              environment overrides, defaults and validation
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	msherror "github.com/msto63/mShell/core/error"
)

// Config holds loaded configuration values. Keys are addressed with
// dot paths ("shell.prompt"). A Config is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	values    map[string]interface{}
	envPrefix string
}

// Options controls loading behavior.
type Options struct {
	// Path is the configuration file to load. Empty means start from
	// defaults only.
	Path string

	// EnvPrefix enables environment overrides. A key "shell.prompt"
	// with prefix "MSHELL" is overridden by MSHELL_SHELL_PROMPT.
	EnvPrefix string

	// Defaults supplies values for keys absent from the file. Keys are
	// dot paths.
	Defaults map[string]interface{}
}

// New creates an empty configuration.
func New() *Config {
	return &Config{values: make(map[string]interface{})}
}

// Load reads the file at path, detecting the format from its
// extension (.toml, .yaml, .yml).
func Load(path string) (*Config, error) {
	return LoadWithOptions(Options{Path: path})
}

// LoadWithOptions reads configuration according to the given options.
// Defaults are merged for keys the file does not define.
func LoadWithOptions(opts Options) (*Config, error) {
	cfg := New()
	cfg.envPrefix = opts.EnvPrefix

	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, msherror.Wrap(err, "reading configuration file").
				WithCode(msherror.CodeConfigError).
				WithDetail("path", opts.Path)
		}
		format, err := formatFromPath(opts.Path)
		if err != nil {
			return nil, err
		}
		if err := cfg.parse(data, format); err != nil {
			return nil, err
		}
	}

	cfg.mergeDefaults(opts.Defaults)
	return cfg, nil
}

// LoadFromString parses configuration from a string in the named
// format ("toml" or "yaml"). Useful for tests and embedded defaults.
func LoadFromString(content, format string) (*Config, error) {
	cfg := New()
	if err := cfg.parse([]byte(content), format); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetEnvPrefix enables environment overrides with the given prefix.
func (c *Config) SetEnvPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envPrefix = prefix
}

// formatFromPath maps a file extension to a parser format.
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", msherror.Newf("unsupported configuration format: %s", filepath.Ext(path)).
			WithCode(msherror.CodeConfigError).
			WithDetail("path", path)
	}
}

// parse decodes data in the given format into the value tree.
func (c *Config) parse(data []byte, format string) error {
	values := make(map[string]interface{})
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return msherror.Wrap(err, "parsing TOML configuration").
				WithCode(msherror.CodeConfigError)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return msherror.Wrap(err, "parsing YAML configuration").
				WithCode(msherror.CodeConfigError)
		}
	default:
		return msherror.Newf("unsupported configuration format: %s", format).
			WithCode(msherror.CodeConfigError)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = values
	return nil
}

// mergeDefaults fills in values for keys not present in the file.
func (c *Config) mergeDefaults(defaults map[string]interface{}) {
	for key, value := range defaults {
		if !c.Has(key) {
			c.Set(key, value)
		}
	}
}

// Has reports whether the key is defined, either in the loaded values
// or through an environment override.
func (c *Config) Has(key string) bool {
	_, found := c.lookup(key)
	return found
}

// Set stores a value under the given dot path, creating intermediate
// tables as needed.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.values
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// lookup resolves a key, consulting environment overrides first.
func (c *Config) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.envPrefix != "" {
		if env, ok := os.LookupEnv(formatEnvKey(c.envPrefix, key)); ok {
			return env, true
		}
	}
	return getValue(c.values, key)
}

// getValue walks the value tree along a dot path.
func getValue(values map[string]interface{}, key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	var current interface{} = values
	for _, part := range parts {
		table, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// formatEnvKey builds the environment variable name for a key.
func formatEnvKey(prefix, key string) string {
	return strings.ToUpper(prefix + "_" + strings.ReplaceAll(key, ".", "_"))
}

// GetString returns the string value for key, or the optional default.
func (c *Config) GetString(key string, def ...string) string {
	if raw, found := c.lookup(key); found {
		if s, ok := toString(raw); ok {
			return s
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// GetInt returns the integer value for key, or the optional default.
func (c *Config) GetInt(key string, def ...int) int {
	if raw, found := c.lookup(key); found {
		if i, ok := toInt(raw); ok {
			return i
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return 0
}

// GetBool returns the boolean value for key, or the optional default.
func (c *Config) GetBool(key string, def ...bool) bool {
	if raw, found := c.lookup(key); found {
		if b, ok := toBool(raw); ok {
			return b
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return false
}

// GetFloat returns the float value for key, or the optional default.
func (c *Config) GetFloat(key string, def ...float64) float64 {
	if raw, found := c.lookup(key); found {
		if f, ok := toFloat(raw); ok {
			return f
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return 0
}

// GetDuration returns the duration value for key, or the optional
// default. Strings use time.ParseDuration syntax; bare numbers are
// interpreted as milliseconds.
func (c *Config) GetDuration(key string, def ...time.Duration) time.Duration {
	if raw, found := c.lookup(key); found {
		if d, ok := toDuration(raw); ok {
			return d
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return 0
}

// GetStringSlice returns the string slice value for key, or the
// optional default. Comma-separated strings are split.
func (c *Config) GetStringSlice(key string, def ...[]string) []string {
	if raw, found := c.lookup(key); found {
		if s, ok := toStringSlice(raw); ok {
			return s
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// S is shorthand for GetString.
func (c *Config) S(key string, def ...string) string { return c.GetString(key, def...) }

// I is shorthand for GetInt.
func (c *Config) I(key string, def ...int) int { return c.GetInt(key, def...) }

// B is shorthand for GetBool.
func (c *Config) B(key string, def ...bool) bool { return c.GetBool(key, def...) }

// F is shorthand for GetFloat.
func (c *Config) F(key string, def ...float64) float64 { return c.GetFloat(key, def...) }

// D is shorthand for GetDuration.
func (c *Config) D(key string, def ...time.Duration) time.Duration { return c.GetDuration(key, def...) }

// GetAll returns a deep copy of the full value tree.
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopy(c.values)
}

// deepCopy clones nested string-keyed maps and slices.
func deepCopy(values map[string]interface{}) map[string]interface{} {
	cp := make(map[string]interface{}, len(values))
	for k, v := range values {
		switch typed := v.(type) {
		case map[string]interface{}:
			cp[k] = deepCopy(typed)
		case []interface{}:
			s := make([]interface{}, len(typed))
			copy(s, typed)
			cp[k] = s
		default:
			cp[k] = v
		}
	}
	return cp
}

// toString converts scalar values to their string form.
func toString(v interface{}) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	default:
		return "", false
	}
}

// toInt converts numeric and numeric-string values to int.
func toInt(v interface{}) (int, bool) {
	switch typed := v.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		return int(typed), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// toBool converts boolean and boolean-string values to bool.
func toBool(v interface{}) (bool, bool) {
	switch typed := v.(type) {
	case bool:
		return typed, true
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "yes", "on", "1":
			return true, true
		case "false", "no", "off", "0":
			return false, true
		}
		return false, false
	case int:
		return typed != 0, true
	case int64:
		return typed != 0, true
	default:
		return false, false
	}
}

// toFloat converts numeric and numeric-string values to float64.
func toFloat(v interface{}) (float64, bool) {
	switch typed := v.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toDuration converts duration strings and bare numbers (milliseconds)
// to time.Duration.
func toDuration(v interface{}) (time.Duration, bool) {
	switch typed := v.(type) {
	case time.Duration:
		return typed, true
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return d, true
	case int:
		return time.Duration(typed) * time.Millisecond, true
	case int64:
		return time.Duration(typed) * time.Millisecond, true
	case float64:
		return time.Duration(typed * float64(time.Millisecond)), true
	default:
		return 0, false
	}
}

// toStringSlice converts slice and comma-separated string values.
func toStringSlice(v interface{}) ([]string, bool) {
	switch typed := v.(type) {
	case []string:
		return append([]string(nil), typed...), true
	case []interface{}:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := toString(item)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case string:
		parts := strings.Split(typed, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, true
	default:
		return nil, false
	}
}

// ValidationRule describes a single configuration requirement.
type ValidationRule struct {
	// Key is the dot path the rule applies to.
	Key string

	// Required fails validation when the key is absent.
	Required bool

	// Type names the expected value type: "string", "int", "bool",
	// "float" or "duration". Empty skips the type check.
	Type string

	// Validator runs against the resolved value when present.
	Validator func(value interface{}) error
}

// ValidationRules is a set of rules checked together.
type ValidationRules []ValidationRule

// Validate checks all rules and returns the first failure.
func (c *Config) Validate(rules ValidationRules) error {
	for _, rule := range rules {
		raw, found := c.lookup(rule.Key)
		if !found {
			if rule.Required {
				return msherror.Newf("missing required configuration key: %s", rule.Key).
					WithCode(msherror.CodeConfigError).
					WithDetail("key", rule.Key)
			}
			continue
		}

		if rule.Type != "" {
			if err := checkType(raw, rule.Type); err != nil {
				return msherror.Wrapf(err, "configuration key %s", rule.Key).
					WithCode(msherror.CodeConfigError).
					WithDetail("key", rule.Key)
			}
		}

		if rule.Validator != nil {
			if err := rule.Validator(raw); err != nil {
				return msherror.Wrapf(err, "configuration key %s", rule.Key).
					WithCode(msherror.CodeConfigError).
					WithDetail("key", rule.Key)
			}
		}
	}
	return nil
}

// checkType verifies that a raw value converts to the named type.
func checkType(v interface{}, typeName string) error {
	var ok bool
	switch typeName {
	case "string":
		_, ok = toString(v)
	case "int":
		_, ok = toInt(v)
	case "bool":
		_, ok = toBool(v)
	case "float":
		_, ok = toFloat(v)
	case "duration":
		_, ok = toDuration(v)
	default:
		return fmt.Errorf("unknown type in validation rule: %s", typeName)
	}
	if !ok {
		return fmt.Errorf("expected %s, got %T", typeName, v)
	}
	return nil
}
