// Package config loads the settings for the rc6demo command.
package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Defaults used when neither the config file nor flags set a value.
const (
	DefaultKey       = "ABC"
	DefaultPlaintext = "Anh"
	DefaultLogLevel  = "info"
)

// Config holds the key, plaintext, and logging settings.
type Config struct {
	// Key is used as raw bytes unless KeyHex is set.
	Key    string `json:"key"`
	KeyHex string `json:"key_hex"`

	Plaintext string `json:"plaintext"`
	LogLevel  string `json:"log_level"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Key       string
	KeyHex    string
	Plaintext string
	LogLevel  string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies non-empty flags over the file's values, then fills in defaults.
func (c *Config) Resolve(flags Flags) {
	// A key given on the command line replaces either form of key in the file.
	if flags.Key != "" {
		c.Key, c.KeyHex = flags.Key, ""
	}
	if flags.KeyHex != "" {
		c.Key, c.KeyHex = "", flags.KeyHex
	}
	if flags.Plaintext != "" {
		c.Plaintext = flags.Plaintext
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Key == "" && c.KeyHex == "" {
		c.Key = DefaultKey
	}
	if c.Plaintext == "" {
		c.Plaintext = DefaultPlaintext
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// KeyBytes returns the configured key. KeyHex takes priority over Key.
func (c *Config) KeyBytes() ([]byte, error) {
	if c.KeyHex == "" {
		return []byte(c.Key), nil
	}

	key, err := hex.DecodeString(c.KeyHex)
	if err != nil {
		return nil, fmt.Errorf("config: key_hex: %w", err)
	}
	return key, nil
}

// Level parses the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
