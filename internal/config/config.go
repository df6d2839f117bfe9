// Package config supplies run defaults unmarshalled from Viper: an optional
// scov.yaml (working directory or $HOME) plus SCOV_* environment variables.
// Explicitly-set CLI flags always win over these values.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Defaults are the tunables a user may pin in a config file instead of
// repeating them on every invocation.
type Defaults struct {
	// max Hamming mismatches per query
	Mismatches int `mapstructure:"mismatches"`

	// worker threads; 0 = all CPUs
	Threads int `mapstructure:"threads"`

	// output format: text | json | jsonl
	Output string `mapstructure:"output"`

	// coverage-map width for --pretty
	Columns int `mapstructure:"columns"`
}

// Load reads scov.yaml (if present) and the environment into a Defaults
// struct. A missing config file is not an error; a malformed one is.
func Load() (Defaults, error) {
	return load(".", "$HOME")
}

func load(paths ...string) (Defaults, error) {
	v := viper.New()
	v.SetConfigName("scov")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("SCOV")
	v.AutomaticEnv()

	v.SetDefault("mismatches", 0)
	v.SetDefault("threads", 0)
	v.SetDefault("output", "text")
	v.SetDefault("columns", 80)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Defaults{}, fmt.Errorf("read config: %w", err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("decode config: %w", err)
	}
	return d, nil
}
