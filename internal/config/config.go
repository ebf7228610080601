package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDisks   = 3
	DefaultSpeed   = "normal"
	DefaultTheme   = "classic"
	DefaultDataDir = ".hanoi"
)

// Config holds the animator settings a front end needs to start a run.
type Config struct {
	Disks   int    `yaml:"disks"`
	Speed   string `yaml:"speed"`
	Theme   string `yaml:"theme"`
	DataDir string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Disks:   DefaultDisks,
		Speed:   DefaultSpeed,
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
