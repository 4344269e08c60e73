package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger — logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Server — HTTP server configuration
	Server ServerConfig `mapstructure:"server"`
	// Scoring — evaluation parameter source configuration
	Scoring ScoringConfig `mapstructure:"scoring"`
	// Storage — result log configuration
	Storage StorageConfig `mapstructure:"storage"`
	// Journal — evaluation journal configuration
	Journal JournalConfig `mapstructure:"journal"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level — log level: debug, info, warn, warning, error.
	// Value is case-insensitive but checked in lowercase.
	Level string `mapstructure:"level"`
}

// ServerConfig contains HTTP server parameters.
type ServerConfig struct {
	// Address — address and port where the server will listen (e.g., ":8080").
	Address string `mapstructure:"address"`
	// Static — path to directory with static files served by the server.
	// Can be empty if static serving is not required.
	Static string `mapstructure:"static"`
}

// ScoringConfig points at the scoring parameter store.
type ScoringConfig struct {
	// Config — path to the JSON document with the standard price and the
	// scoring configuration list. A missing or malformed file falls back to
	// the documented defaults, see LoadCalcConfig.
	Config string `mapstructure:"config"`
}

// StorageConfig defines result log parameters.
type StorageConfig struct {
	// Result — path to the JSON document holding the evaluation result log.
	Result string `mapstructure:"result"`
}

// JournalConfig defines evaluation journal parameters.
type JournalConfig struct {
	// File — journal file path. Empty disables journaling.
	File string `mapstructure:"file"`
	// Size — maximal journal file size in MB before rotation (default 100).
	Size int `mapstructure:"size"`
	// Amount — number of rotated journal files to keep (default 20).
	Amount int `mapstructure:"amount"`
}

// Validate checks the correctness of the entire application configuration.
// Calls validation for each nested structure and returns the first detected
// error. Returns nil if the configuration is valid.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	if err := c.Scoring.Validate(); err != nil {
		return err
	}

	if err := c.Storage.Validate(); err != nil {
		return err
	}

	return c.Journal.Validate()
}

// Validate checks the correctness of the logger configuration.
// Verifies that the log level is set and is one of the supported values.
// Supported values: debug, info, warn, warning, error (case-insensitive).
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	return nil
}

// Validate checks the correctness of the server configuration.
// Verifies that the server address is set.
func (n *ServerConfig) Validate() error {
	if n.Address == "" {
		return errors.New("server.address: must be specified")
	}

	return nil
}

// Validate fills in the default scoring parameter file path.
func (s *ScoringConfig) Validate() error {
	if s.Config == "" {
		s.Config = "calc_conf.json"
	}

	return nil
}

// Validate fills in the default result log path.
func (s *StorageConfig) Validate() error {
	if s.Result == "" {
		s.Result = "result.json"
	}

	return nil
}

// Validate fills in default journal rotation parameters.
func (j *JournalConfig) Validate() error {
	if j.Size == 0 {
		j.Size = 100
	}

	if j.Amount == 0 {
		j.Amount = 20
	}

	return nil
}

// LoadConfig loads configuration from the specified file using Viper.
// Supports YAML format. Also includes environment variable loading
// (AutomaticEnv), which can override values from the file.
//
// Parameter configPath — path to the configuration file.
//
// Returns a pointer to AppConfig or an error if:
// - the file is not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
