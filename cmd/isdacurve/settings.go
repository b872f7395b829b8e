package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meenmo/isdacurve/config"
)

const envPrefix = "ISDACURVE"

// settings is everything the command reads from the config file, the
// environment and the global flags, in increasing order of precedence.
type settings struct {
	Calibration config.Config `mapstructure:"calibration"`
	Log         logSettings   `mapstructure:"log"`
	Parallel    int           `mapstructure:"parallel"`
}

type logSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys binds global flags to settings keys.
var flagKeys = map[string]string{
	"log.level":  "log-level",
	"log.format": "log-format",
	"parallel":   "parallel",
}

func setDefaults(v *viper.Viper) {
	d := config.DefaultConfig
	v.SetDefault("calibration.root_absolute_tolerance", d.RootAbsoluteTolerance)
	v.SetDefault("calibration.max_root_iterations", d.MaxRootIterations)
	v.SetDefault("calibration.max_bracket_expansions", d.MaxBracketExpansions)
	v.SetDefault("calibration.bracket_expansion_factor", d.BracketExpansionFactor)
	v.SetDefault("calibration.low_rate_threshold", d.LowRateThreshold)
	v.SetDefault("calibration.low_rate_bracket_width", d.LowRateBracketWidth)
	v.SetDefault("calibration.small_exponent", d.SmallExponent)
	v.SetDefault("calibration.min_hazard_guess", d.MinHazardGuess)
	v.SetDefault("calibration.accrual_on_default", d.AccrualOnDefault)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("parallel", 4)
}

// loadSettings merges defaults, the optional YAML config file at path,
// ISDACURVE_* environment variables (ISDACURVE_CALIBRATION_MAX_ROOT_ITERATIONS,
// ISDACURVE_LOG_LEVEL, ...) and the flags of cmd that were set.
func loadSettings(cmd *cobra.Command, path string) (settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, err
			}
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Calibration.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

var errLogFormat = errors.New("unknown log format")

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, ls logSettings) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ls.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(ls.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("%w %q, want text or json", errLogFormat, ls.Format)
}
