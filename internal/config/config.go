// Package config loads tool settings (not the logging parameter record,
// which lives in conf_can.txt — see internal/conffile).
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool settings.
type Config struct {
	Python PythonConfig `mapstructure:"python"`
	Conf   ConfConfig   `mapstructure:"conf"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// PythonConfig locates the vendor logger.
type PythonConfig struct {
	Interpreter string `mapstructure:"interpreter"` // e.g. "python3"
	ScriptDir   string `mapstructure:"script_dir"`  // directory holding can_*_logger.py
}

// ConfConfig locates the parameter record file.
type ConfConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Format string `mapstructure:"format"` // "json" or "text"
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
}

// OutputConfig describes where the vendor logger drops its CSV files.
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"` // doublestar glob relative to Dir
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("python.interpreter", defaultInterpreter())
	v.SetDefault("python.script_dir", ".")
	v.SetDefault("conf.path", "conf_can.txt")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.dir", ".")
	// The vendor logger names files <timestamp>_<MODEL>AC_<tag>.csv.
	v.SetDefault("output.pattern", "*_{A552AC,G552PC1}_*.csv")

	// Read from config file if exists
	v.SetConfigName("canlog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/canlog")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Environment variables override: CANLOG_PYTHON_INTERPRETER etc.
	v.SetEnvPrefix("CANLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func defaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}
