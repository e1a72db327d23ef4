// Package config loads the runtime's CLI configuration from a viper
// instance, covering logging, leak-tracker policy, and the SQL store DSN.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoggingCfg configures internal/octypes/logger.
type LoggingCfg struct {
	// Level is the minimum level to log: debug, info, warn, error.
	Level string `mapstructure:"level"`
	// ConsoleLevel is the minimum level to show on console (can be higher than file level).
	ConsoleLevel string `mapstructure:"console_level"`
	// DebugFile is the path to the debug log file (optional).
	DebugFile string `mapstructure:"debug_file"`
	// InfoFile is the path to the info log file (optional).
	InfoFile string `mapstructure:"info_file"`
	// Development enables development mode with more verbose output.
	Development bool `mapstructure:"development"`
}

// LeakTrackCfg configures internal/octypes/leaktrack.
type LeakTrackCfg struct {
	// Enabled turns on allocation tracking.
	Enabled bool `mapstructure:"enabled"`
	// HintWithUUID is loaded from the configuration file, but no caller
	// consults it: tracked allocations keep an empty hint.
	// leaktrack.TrackWithUUID is the call that tags an entry with a UUID.
	HintWithUUID bool `mapstructure:"hint_with_uuid"`
}

// StoreCfg configures internal/octypes/store.
type StoreCfg struct {
	Driver string `mapstructure:"driver"` // "postgres" or "mysql"
	DSN    string `mapstructure:"dsn"`
	Table  string `mapstructure:"table"`
}

// Config is the unmarshaled shape of the runtime's CLI configuration file.
type Config struct {
	Version   string       `mapstructure:"version"`
	Logging   LoggingCfg   `mapstructure:"logging"`
	LeakTrack LeakTrackCfg `mapstructure:"leak_track"`
	Store     StoreCfg     `mapstructure:"store"`
}

var cfg *Config

// Load populates the global config from a viper instance, applying defaults
// before unmarshaling.
func Load(v *viper.Viper) error {
	v.SetDefault("version", "0.1")
	v.SetDefault("logging.level", "info")
	v.SetDefault("leak_track.enabled", false)
	v.SetDefault("store.table", "values")

	if ver := v.Get("version"); ver != nil {
		if _, ok := ver.(string); !ok {
			return fmt.Errorf("version must be a string")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

// Get returns the global config, defaulting to a zero-value Config if Load
// was never called.
func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
