// Package config loads optional user defaults from a YAML file. Every field
// is a pointer so an unset key is distinguishable from a zero value; flags
// the user passes on the command line always win over config values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-set generation defaults.
type Config struct {
	WordCount     *int    `yaml:"word_count"`
	MinLength     *int    `yaml:"min_length"`
	MaxLength     *int    `yaml:"max_length"`
	AppendNumeral *bool   `yaml:"append_numeral"`
	AppendSymbol  *bool   `yaml:"append_symbol"`
	SymbolSet     *string `yaml:"symbol_set"`
	MinWord       *int    `yaml:"min_word"`
	MaxWord       *int    `yaml:"max_word"`
	Wordlist      *string `yaml:"wordlist"`
	TopWords      *int    `yaml:"top_words"`
	SampleSize    *int    `yaml:"sample_size"`
}

// DefaultPath returns the conventional config location,
// ~/.config/wordpass/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wordpass", "config.yaml")
}

// Load reads a config file. A missing or empty file yields an empty config,
// not an error, so a fresh install works without any setup.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.WordCount != nil && *cfg.WordCount < 1 {
		return fmt.Errorf("word_count must be at least 1")
	}
	if cfg.SampleSize != nil && *cfg.SampleSize < 1 {
		return fmt.Errorf("sample_size must be at least 1")
	}
	if cfg.TopWords != nil && *cfg.TopWords < 1 {
		return fmt.Errorf("top_words must be at least 1")
	}
	if cfg.SymbolSet != nil && *cfg.SymbolSet == "" {
		return fmt.Errorf("symbol_set must not be empty")
	}
	if cfg.Wordlist != nil && *cfg.Wordlist == "" {
		return fmt.Errorf("wordlist must not be empty")
	}
	return nil
}
