// Package config loads gaplint configuration from file, environment, and
// defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for gaplint.
type Config struct {
	// Root is the repository root scanned in discovery mode.
	Root string `mapstructure:"root"`
	// Schema optionally points at a schema file overriding the embedded one.
	Schema string `mapstructure:"schema"`
	// Pattern is the glob proposal directories must match during discovery.
	Pattern string `mapstructure:"pattern"`
}

var defaultConfig = Config{
	Root:    ".",
	Schema:  "",
	Pattern: "GAP-*",
}

// LoadConfig reads an optional .gaplint.yaml from the working directory or
// $HOME, with GAPLINT_* environment overrides. Missing config files are fine;
// defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("root", defaultConfig.Root)
	v.SetDefault("schema", defaultConfig.Schema)
	v.SetDefault("pattern", defaultConfig.Pattern)

	v.SetConfigName(".gaplint")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("GAPLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; ignore read errors and use defaults
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}
	return &config, nil
}
