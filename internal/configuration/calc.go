package configuration

import (
	"log/slog"

	"github.com/spf13/viper"
)

// DefaultStandardPrice is the documented fallback reference price, used when
// the scoring parameter file is absent or malformed.
const DefaultStandardPrice = 5385

// ScoringParams is one named scoring configuration as it appears in the
// parameter file. Values are plain floats here; the score package converts
// them to decimals before any arithmetic.
type ScoringParams struct {
	// Name — configuration name.
	Name string `mapstructure:"name"`
	// FloatA — base float parameter A.
	FloatA float64 `mapstructure:"float_a"`
	// WeightB — benchmark blend weight, conventionally in [0,1] but not
	// enforced.
	WeightB float64 `mapstructure:"weight_b"`
	// FloatC3 — average price adjustment parameter.
	FloatC3 float64 `mapstructure:"float_c3"`
}

// CalcConfig is the scoring parameter store: the standard reference price and
// the list of scoring configurations.
type CalcConfig struct {
	StandardPrice float64         `mapstructure:"standard_price"`
	Configs       []ScoringParams `mapstructure:"configs"`
}

// LoadCalcConfig reads the scoring parameter document at path. A missing or
// malformed file is not an error: the loader falls back to the default
// standard price and an empty configuration list. The empty list only becomes
// a hard failure at evaluation time, when a configuration has to be selected
// for an item.
func LoadCalcConfig(path string) *CalcConfig {
	fallback := &CalcConfig{
		StandardPrice: DefaultStandardPrice,
		Configs:       []ScoringParams{},
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("standard_price", DefaultStandardPrice)

	if err := v.ReadInConfig(); err != nil {
		slog.Warn("Unable to read scoring parameters, using defaults", "path", path, "error", err)
		return fallback
	}

	var config CalcConfig
	if err := v.Unmarshal(&config); err != nil {
		slog.Warn("Unable to parse scoring parameters, using defaults", "path", path, "error", err)
		return fallback
	}

	if config.Configs == nil {
		config.Configs = []ScoringParams{}
	}
	return &config
}
