package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MissionPath string // hcl mission file or directory
	RunName     string // run profile to execute; optional with a single profile
	DryRun      bool   // list the plan instead of executing it
	Workers     int    // overrides the profile's concurrency when > 0

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates the raw configuration coming from the CLI layer.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MissionPath == "" {
		return nil, errors.New("MissionPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 0 {
		return nil, errors.New("Workers must not be negative")
	}

	return &cfg, nil
}
