package config

import (
	"os"

	"blackjack-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool

	Listen    string `yaml:"listen" envconfig:"listen"`
	Blackjack struct {
		StartingBalance      int `yaml:"startingBalance" envconfig:"starting_balance"`
		SettleTimeoutSeconds int `yaml:"settleTimeoutSeconds" envconfig:"settle_timeout_seconds"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
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
// A missing config file is not an error; the defaults and environment
// are enough to run the server.
func Load() error {
	config = Config{}

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	if config.Listen == "" {
		config.Listen = ":5000"
	}

	if config.Blackjack.StartingBalance <= 0 {
		config.Blackjack.StartingBalance = 1000
	}

	if config.Blackjack.SettleTimeoutSeconds <= 0 {
		config.Blackjack.SettleTimeoutSeconds = 5
	}

	config.loaded = true
	return nil
}
