// Package config loads board service settings from a yaml file and the
// environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	// WordsFile overrides the built-in word pool when set.
	WordsFile string `yaml:"words-file" env:"WORDS_FILE" env-default:""`
}

// Load reads configuration from the given file, falling back to environment
// variables alone when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
		return config, nil
	}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file %q: %w", path, err)
	}
	return config, nil
}
