package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Lexicon struct {
		Path string `yaml:"path"`
	} `yaml:"lexicon"`
	Reviews struct {
		Seed bool `yaml:"seed"`
	} `yaml:"reviews"`
	Fairness struct {
		MinSampleSize    int `yaml:"min_sample_size"`
		DefaultThreshold int `yaml:"default_threshold"`
	} `yaml:"fairness"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	if c.Lexicon.Path == "" {
		c.Lexicon.Path = "data/bias_rules.csv"
	}
	if c.Fairness.MinSampleSize == 0 {
		c.Fairness.MinSampleSize = 5
	}
	if c.Fairness.DefaultThreshold == 0 {
		c.Fairness.DefaultThreshold = 3
	}
}
