// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Ledger struct {
		CounterAccount string `mapstructure:"counter_account" yaml:"counter_account"`
		Tolerance      string `mapstructure:"tolerance" yaml:"tolerance"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Classifier struct {
		MappingsFile string `mapstructure:"mappings_file" yaml:"mappings_file"`
		AliasesFile  string `mapstructure:"aliases_file" yaml:"aliases_file"`
	} `mapstructure:"classifier" yaml:"classifier"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.journal-csv")
	v.AddConfigPath(".journal-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Ledger defaults
	v.SetDefault("ledger.counter_account", "Cash")
	v.SetDefault("ledger.tolerance", "0.01")

	// Classifier defaults
	v.SetDefault("classifier.mappings_file", "")
	v.SetDefault("classifier.aliases_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate counter account
	if strings.TrimSpace(config.Ledger.CounterAccount) == "" {
		return fmt.Errorf("ledger.counter_account must not be empty")
	}

	// Validate balance tolerance
	tolerance, err := decimal.NewFromString(config.Ledger.Tolerance)
	if err != nil {
		return fmt.Errorf("ledger.tolerance must be a decimal number, got: %s", config.Ledger.Tolerance)
	}
	if tolerance.IsNegative() {
		return fmt.Errorf("ledger.tolerance must not be negative, got: %s", config.Ledger.Tolerance)
	}

	return nil
}

// BalanceTolerance returns the configured tolerance as a decimal. Validation
// guarantees the value parses.
func (c *Config) BalanceTolerance() decimal.Decimal {
	return decimal.RequireFromString(c.Ledger.Tolerance)
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
