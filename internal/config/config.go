package config

import (
	"os"

	"holdemsim/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em simulator
type Config struct {
	loaded        bool
	StartingChips int   `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind    int   `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int   `yaml:"bigBlind" envconfig:"big_blind"`
	Bots          int   `yaml:"bots" envconfig:"bots"`
	Seed          int64 `yaml:"seed" envconfig:"seed"`
	Log           struct {
		Level string `yaml:"level" envconfig:"level"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults plus environment overrides apply
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		StartingChips: 100000,
		SmallBlind:    500,
		BigBlind:      1000,
		Bots:          3,
	}
}
