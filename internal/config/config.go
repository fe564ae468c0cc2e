package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// ValidationConfig controls rule validation and the AI run. The two batch
// sizes are independent on purpose: the outer one bounds how often progress
// is reported, the inner one bounds the size of each request to the remote
// validator (vendor limit).
type ValidationConfig struct {
	AutoCorrect    bool `toml:"auto_correct"`
	OuterBatchSize int  `toml:"outer_batch_size"`
	InnerBatchSize int  `toml:"inner_batch_size"`
}

type DuplicatesConfig struct {
	MinConfidence float64 `toml:"min_confidence"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Validation ValidationConfig `toml:"validation"`
	Duplicates DuplicatesConfig `toml:"duplicates"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.Validation.OuterBatchSize <= 0 {
		c.Validation.OuterBatchSize = 20
	}
	if c.Validation.InnerBatchSize <= 0 {
		c.Validation.InnerBatchSize = 5
	}
	if c.Duplicates.MinConfidence <= 0 {
		c.Duplicates.MinConfidence = 0.85
	}
}
