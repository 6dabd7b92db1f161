package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from the YAML file at path.
// It applies defaults for unset values and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// setDefaults registers defaults for everything that is optional.
// Paths and target candidates are deployment-specific and stay required.
func setDefaults(v *viper.Viper) {
	v.SetDefault("schema.drop_if_present", []string{})
	v.SetDefault("schema.currency_columns", []string{
		"bank_balance", "annual_salary", "loan_amount",
	})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
