// Package config provides centralized configuration management for the
// pipeline. It loads settings from a YAML file and validates everything
// on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"
)

// DefaultPath is where the config file is looked up when no explicit
// path is given. Relative to the working directory, never to a guessed
// project root.
const DefaultPath = "config/config.yaml"

// Config holds all pipeline configuration.
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Schema  SchemaConfig  `mapstructure:"schema"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PathsConfig holds input/output locations.
type PathsConfig struct {
	// RawDataDir is the directory scanned for the raw CSV (required).
	RawDataDir string `mapstructure:"raw_data_dir"`

	// ProcessedDataDir is where the cleaned CSV is written (required).
	// Created with parents if absent.
	ProcessedDataDir string `mapstructure:"processed_data_dir"`

	// ProcessedFilename is the output file name (required).
	ProcessedFilename string `mapstructure:"processed_filename"`
}

// SchemaConfig holds column-level hints for the raw dataset.
type SchemaConfig struct {
	// TargetCandidates are possible raw names for the label column,
	// in preference order (required, at least one).
	TargetCandidates []string `mapstructure:"target_candidates"`

	// DropIfPresent are identifier columns removed when they exist.
	DropIfPresent []string `mapstructure:"drop_if_present"`

	// CurrencyColumns are columns holding currency-formatted text that
	// should be coerced to numbers (default: bank_balance,
	// annual_salary, loan_amount).
	CurrencyColumns []string `mapstructure:"currency_columns"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`

	// Format is the log format: text or json (default: text)
	Format string `mapstructure:"format"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Paths.RawDataDir == "" {
		errs = append(errs, "paths.raw_data_dir is required")
	}
	if c.Paths.ProcessedDataDir == "" {
		errs = append(errs, "paths.processed_data_dir is required")
	}
	if c.Paths.ProcessedFilename == "" {
		errs = append(errs, "paths.processed_filename is required")
	}
	if strings.ContainsAny(c.Paths.ProcessedFilename, `/\`) {
		errs = append(errs, "paths.processed_filename must be a bare file name, not a path")
	}

	if len(c.Schema.TargetCandidates) == 0 {
		errs = append(errs, "schema.target_candidates must list at least one candidate")
	}
	for i, cand := range c.Schema.TargetCandidates {
		if strings.TrimSpace(cand) == "" {
			errs = append(errs, fmt.Sprintf("schema.target_candidates[%d] is empty", i))
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for startup logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Paths: {RawDataDir: %q, ProcessedDataDir: %q, ProcessedFilename: %q}, ",
		c.Paths.RawDataDir, c.Paths.ProcessedDataDir, c.Paths.ProcessedFilename))
	b.WriteString(fmt.Sprintf("Schema: {TargetCandidates: %v, DropIfPresent: %v, CurrencyColumns: %v}, ",
		c.Schema.TargetCandidates, c.Schema.DropIfPresent, c.Schema.CurrencyColumns))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
