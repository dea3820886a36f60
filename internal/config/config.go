// Package config holds the application configuration and the resolver
// that turns the raw free-text attendance settings into validated values.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Class   ClassConfig   `yaml:"class" envconfig:"CLASS"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/rollcall.log" validate:"required"`
}

// ClassConfig carries the default attendance settings. All fields are
// free text; they are resolved and validated by ResolveAttendance just
// before a run, so a typo here surfaces the same message as a typo on
// the command line.
type ClassConfig struct {
	Start         string `yaml:"start" envconfig:"START" default:"13:30" validate:"required"`
	End           string `yaml:"end" envconfig:"END" default:"15:00" validate:"required"`
	LateMinutes   string `yaml:"late_minutes" envconfig:"LATE_MINUTES" default:"10" validate:"required"`
	AbsentMinutes string `yaml:"absent_minutes" envconfig:"ABSENT_MINUTES" default:"30" validate:"required"`
	TotalPoints   string `yaml:"total_points" envconfig:"TOTAL_POINTS" default:"10" validate:"required"`
	LatePenalty   string `yaml:"late_penalty" envconfig:"LATE_PENALTY" default:"0.5" validate:"required"`
	AbsentPenalty string `yaml:"absent_penalty" envconfig:"ABSENT_PENALTY" default:"1" validate:"required"`
}

// ReportConfig contains report output configuration.
type ReportConfig struct {
	Format     string `yaml:"format" envconfig:"FORMAT" default:"csv" validate:"oneof=csv txt text pdf"`
	OutputPath string `yaml:"output_path" envconfig:"OUTPUT_PATH" default:"attendance_report.csv" validate:"required"`
}

// DefaultConfigFile is consulted by Load when no explicit file is given.
const DefaultConfigFile = "rollcall.yml"

// Load builds the configuration: YAML file first (if present), then
// environment variables with the ROLLCALL prefix, then defaults for
// anything still unset. The result is validated before being returned.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Environment overrides file values; envconfig fills the remaining
	// zero fields from the default tags.
	if err := envconfig.Process("ROLLCALL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Attendance returns the raw attendance settings from the class section.
func (c *Config) Attendance() AttendanceConfig {
	return AttendanceConfig{
		ClassStart:    c.Class.Start,
		ClassEnd:      c.Class.End,
		LateMinutes:   c.Class.LateMinutes,
		AbsentMinutes: c.Class.AbsentMinutes,
		TotalPoints:   c.Class.TotalPoints,
		LatePenalty:   c.Class.LatePenalty,
		AbsentPenalty: c.Class.AbsentPenalty,
	}
}
