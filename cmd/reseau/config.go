package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// investigateConfig mirrors the investigate.yaml file. Zero values
// mean "not set"; explicit flags always win over file values.
type investigateConfig struct {
	Data       string   `yaml:"data"`
	Samples    int      `yaml:"samples"`
	Seed       int64    `yaml:"seed"`
	Algorithms []string `yaml:"algorithms"`
}

func loadInvestigateConfig(path string) (investigateConfig, error) {
	var cfg investigateConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
