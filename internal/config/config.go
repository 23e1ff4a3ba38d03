package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	BoardSize int    `yaml:"board-size" env-default:"3"`
	Labels    string `yaml:"labels" env-default:"xo"`
	Seed      int64  `yaml:"seed" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// LabelList - the configured labels split into single-character tokens,
// one per player.
func (that *Game) LabelList() []string {
	labels := make([]string, 0, len(that.Labels))
	for _, ch := range that.Labels {
		labels = append(labels, string(ch))
	}

	return labels
}
