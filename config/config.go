// Package config holds the numerical parameters of the curve calibrators.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/meenmo/isdacurve/solver"
)

// Config holds solver and curve construction parameters.
type Config struct {
	// RootAbsoluteTolerance is the absolute part of the root finder tolerance.
	// The relative part is machine precision.
	RootAbsoluteTolerance float64 `mapstructure:"root_absolute_tolerance" yaml:"root_absolute_tolerance" validate:"gte=0,lt=1e-6"`

	// MaxRootIterations is the maximum Brent iterations per node.
	MaxRootIterations int `mapstructure:"max_root_iterations" yaml:"max_root_iterations" validate:"gte=10,lte=10000"`

	// MaxBracketExpansions is the maximum number of times the starting
	// interval may be widened before a node is declared unsolvable.
	MaxBracketExpansions int `mapstructure:"max_bracket_expansions" yaml:"max_bracket_expansions" validate:"gte=1,lte=1000"`

	// BracketExpansionFactor is the geometric growth of the interval.
	BracketExpansionFactor float64 `mapstructure:"bracket_expansion_factor" yaml:"bracket_expansion_factor" validate:"gt=1,lte=10"`

	// LowRateThreshold switches swap nodes to the linearised start point
	// and an absolute bracket when |quote| is below it. It must be positive
	// so that a zero quote never gets the empty relative bracket.
	LowRateThreshold float64 `mapstructure:"low_rate_threshold" yaml:"low_rate_threshold" validate:"gt=0,lt=1"`

	// LowRateBracketWidth is the half width of the absolute bracket used on
	// the low-rate branch.
	LowRateBracketWidth float64 `mapstructure:"low_rate_bracket_width" yaml:"low_rate_bracket_width" validate:"gt=0,lt=1"`

	// SmallExponent is the |Δ(h t + r t)| under which segment integrals use
	// series expansions instead of the closed form.
	SmallExponent float64 `mapstructure:"small_exponent" yaml:"small_exponent" validate:"gt=0,lt=1e-2"`

	// MinHazardGuess floors the starting hazard rate for credit nodes.
	MinHazardGuess float64 `mapstructure:"min_hazard_guess" yaml:"min_hazard_guess" validate:"gt=0,lt=1"`

	// AccrualOnDefault is the default accrual-on-default formula name.
	AccrualOnDefault string `mapstructure:"accrual_on_default" yaml:"accrual_on_default" validate:"oneof=ORIGINAL_ISDA MARKIT_FIX CORRECT"`
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	RootAbsoluteTolerance:  1e-18,
	MaxRootIterations:      200,
	MaxBracketExpansions:   50,
	BracketExpansionFactor: 1.6,
	LowRateThreshold:       1e-4,
	LowRateBracketWidth:    1e-3,
	SmallExponent:          1e-5,
	MinHazardGuess:         1e-4,
	AccrualOnDefault:       "ORIGINAL_ISDA",
}

var validate = validator.New()

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid calibration config: %w", err)
	}
	return nil
}

// SolverSettings maps the root finding fields onto solver.Settings.
func (c Config) SolverSettings() solver.Settings {
	return solver.Settings{
		AbsTolerance:    c.RootAbsoluteTolerance,
		MaxIterations:   c.MaxRootIterations,
		MaxExpansions:   c.MaxBracketExpansions,
		ExpansionFactor: c.BracketExpansionFactor,
	}
}
