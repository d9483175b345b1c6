package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Core       CoreConfig         `toml:"core"`
	Vocabulary VocabularyConfig   `toml:"vocabulary"`
	Densities  map[string]float64 `toml:"densities"`
}

type CoreConfig struct {
	JSON     bool   `toml:"json"`
	LogLevel string `toml:"log_level"`
}

// VocabularyConfig extends the built-in word lists.
type VocabularyConfig struct {
	PrepWords []string `toml:"prep_words"`
	StopWords []string `toml:"stop_words"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			JSON:     false,
			LogLevel: "info",
		},
		Vocabulary: VocabularyConfig{
			PrepWords: []string{},
			StopWords: []string{},
		},
		Densities: map[string]float64{},
	}
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	return config, nil
}
