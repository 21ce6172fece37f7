package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. ANALOG_LOG_LEVEL.
const EnvPrefix = "ANALOG"

// Config holds all runtime settings of the calculator
type Config struct {
	Log   LogConfig
	Shell ShellConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  zerolog.Level
	Format string // console or json
}

// ShellConfig holds menu shell configuration
type ShellConfig struct {
	ClearScreen bool
	MaxAttempts int // 0 means unlimited
	Precision   int // significant digits in printed results
}

// Load reads configuration from ANALOG_* environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CLEAR_SCREEN", "true")
	v.SetDefault("MAX_ATTEMPTS", "0")
	v.SetDefault("PRECISION", "4")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))))
	if err != nil {
		return nil, fmt.Errorf("config: %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	cfg.Log.Level = level

	cfg.Log.Format = strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("config: %s_LOG_FORMAT %q: want console or json", EnvPrefix, cfg.Log.Format)
	}

	if cfg.Shell.ClearScreen, err = strconv.ParseBool(strings.TrimSpace(v.GetString("CLEAR_SCREEN"))); err != nil {
		return nil, fmt.Errorf("config: %s_CLEAR_SCREEN: %w", EnvPrefix, err)
	}

	if cfg.Shell.MaxAttempts, err = intSetting(v, "MAX_ATTEMPTS", 0, 1<<20); err != nil {
		return nil, err
	}
	if cfg.Shell.Precision, err = intSetting(v, "PRECISION", 1, 15); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func intSetting(v *viper.Viper, key string, lo, hi int) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s_%s: %w", EnvPrefix, key, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("config: %s_%s = %d outside [%d, %d]", EnvPrefix, key, n, lo, hi)
	}
	return n, nil
}

// NewLogger builds the process logger for cfg. Console output goes to w
// through zerolog's ConsoleWriter.
func (c LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	out := w
	if c.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(c.Level).With().Timestamp().Logger()
}
