package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

// Config holds the defaults of the planner CLI. Flags take precedence over every value.
type Config struct {
	Estimate *estimateConfig
	Service  *svcConfig
}

type estimateConfig struct {
	Style    string `envconfig:"PLANNER_STYLE" default:"aztec"`
	Maturity string `envconfig:"PLANNER_MATURITY" default:"prototype"`
	TeamSize int    `envconfig:"PLANNER_TEAM_SIZE" default:"1"`
}

type svcConfig struct {
	Output     string `envconfig:"PLANNER_OUTPUT" default:""`
	LogLevel   string `envconfig:"PLANNER_LOG_LEVEL" default:"warn"`
	TuningFile string `envconfig:"PLANNER_TUNING_FILE" default:""`
}

// New returns the process wide configuration, read from the environment on first use.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads the configuration from the environment without caching it.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
