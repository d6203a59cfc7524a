// Package config manages configuration for ecs-find-tasks.
// It uses Viper to merge command-line flags, environment variables and
// GitHub Actions inputs (INPUT_* variables) into one validated struct.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/runvoy/ecs-find-tasks/internal/constants"
	appErrors "github.com/runvoy/ecs-find-tasks/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything a single run needs.
type Config struct {
	// Cluster is the ECS cluster name or ARN to query
	Cluster string `mapstructure:"cluster" validate:"required"`
	// Tags is the raw comma-separated list of key:value specs
	Tags string `mapstructure:"tags"`
	// Region overrides the AWS region picked by the SDK default chain
	Region string `mapstructure:"region"`

	Format   string        `mapstructure:"format" validate:"oneof=text json yaml"`
	LogLevel string        `mapstructure:"log_level"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// RunID identifies the GitHub Actions run, when there is one
	RunID string `mapstructure:"run_id"`
}

var validate = validator.New()

// Load builds the configuration. Precedence, highest first: flags explicitly set on
// the command line, ECS_FIND_TASKS_* variables, GitHub Actions inputs, defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	bindEnvVars(v)

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, appErrors.ErrInvalidConfig("error binding flags", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, appErrors.ErrInvalidConfig("error unmarshaling config", err)
	}

	// Action inputs arrive verbatim, so a YAML block scalar leaves a trailing newline.
	cfg.Cluster = strings.TrimSpace(cfg.Cluster)
	if cfg.Cluster == "" {
		cfg.Cluster = constants.DefaultCluster
	}
	cfg.Tags = strings.TrimSpace(cfg.Tags)
	cfg.Region = strings.TrimSpace(cfg.Region)
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := validate.Struct(&cfg); err != nil {
		return nil, appErrors.ErrInvalidInput("config validation failed", err)
	}

	return &cfg, nil
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Helper functions

func setDefaults(v *viper.Viper) {
	v.SetDefault("cluster", constants.DefaultCluster)
	v.SetDefault("tags", "")
	v.SetDefault("region", "")
	v.SetDefault("format", constants.FormatText)
	v.SetDefault("log_level", "INFO")
	v.SetDefault("timeout", 0)
	v.SetDefault("run_id", "")
}

func bindEnvVars(v *viper.Viper) {
	// The first variable set wins, so ECS_FIND_TASKS_* overrides the action inputs.
	inputs := map[string]string{
		"cluster": constants.InputCluster,
		"tags":    constants.InputTags,
		"region":  constants.InputRegion,
	}
	for key, input := range inputs {
		_ = v.BindEnv(key, envName(key), inputEnvName(input))
	}

	for _, key := range []string{"format", "log_level", "timeout"} {
		_ = v.BindEnv(key, envName(key))
	}

	_ = v.BindEnv("run_id", "GITHUB_RUN_ID")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flagKeys := map[string]string{
		"cluster":   "cluster",
		"tags":      "tags",
		"region":    "region",
		"format":    "format",
		"log-level": "log_level",
		"timeout":   "timeout",
	}

	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("flag %s: %w", flagName, err)
		}
	}
	return nil
}

func envName(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(key)
}

// inputEnvName mirrors how the GitHub Actions runner exposes an input named name.
func inputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}
