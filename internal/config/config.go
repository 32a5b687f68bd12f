// Package config contains all knobs and defaults used to configure the
// stackchain command line tool.
package config

import (
	"fmt"
	"slices"

	"github.com/stackchain/stackchain/internal/stress"
)

const (
	DefaultParallelism = 4
	DefaultRowWidth    = 16
)

// LogConfig defines logging configuration.
type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

// RunConfig configures the scenario runner.
type RunConfig struct {
	// Parallelism bounds how many scenario files run at once.
	Parallelism int

	// Output is 'json' for a machine readable report or 'text' for a summary.
	Output string

	// RowWidth is how many elements of a final chain are printed per line in
	// text output.
	RowWidth int
}

// StressConfig configures the teardown stress harness.
type StressConfig struct {
	Variant  string
	Elements int
	Trials   int
	MaxStack int
}

type Config struct {
	Log    LogConfig
	Run    RunConfig
	Stress StressConfig
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		Run: RunConfig{
			Parallelism: DefaultParallelism,
			Output:      "json",
			RowWidth:    DefaultRowWidth,
		},
		Stress: StressConfig{
			Variant:  "exclusive",
			Elements: stress.DefaultElements,
			Trials:   stress.DefaultTrials,
			MaxStack: stress.DefaultMaxStack,
		},
	}
}

func (cfg *Config) Verify() error {
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json']")
	}

	if !slices.Contains([]string{"none", "debug", "info", "warn", "error"}, cfg.Log.Level) {
		return fmt.Errorf("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error']")
	}

	if cfg.Run.Parallelism < 1 {
		return fmt.Errorf("config 'run.parallelism' must be at least 1, got %d", cfg.Run.Parallelism)
	}

	if cfg.Run.Output != "text" && cfg.Run.Output != "json" {
		return fmt.Errorf("config 'run.output' must be one of ['text', 'json']")
	}

	if cfg.Run.RowWidth < 1 {
		return fmt.Errorf("config 'run.rowWidth' must be at least 1, got %d", cfg.Run.RowWidth)
	}

	return cfg.StressConfig().Validate()
}

// StressConfig converts the stress section into the harness's own config.
func (cfg *Config) StressConfig() stress.Config {
	return stress.Config{
		Variant:  cfg.Stress.Variant,
		Elements: cfg.Stress.Elements,
		Trials:   cfg.Stress.Trials,
		MaxStack: cfg.Stress.MaxStack,
	}
}
