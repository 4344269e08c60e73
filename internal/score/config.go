package score

import "github.com/shopspring/decimal"

// Config is one named set of scoring parameters. WeightB conventionally lies
// in [0,1] and FloatC3 close to zero, but neither is range-checked here:
// bounds are delegated to the configuration author, and out-of-range values
// flow through the formulas unchanged.
type Config struct {
	// Name — configuration name, recorded on every item scored with it.
	Name string
	// FloatA — base float parameter, adjusted per bid tier before use.
	FloatA decimal.Decimal
	// WeightB — blend weight between the average-anchored and
	// standard-price-anchored benchmark terms.
	WeightB decimal.Decimal
	// FloatC3 — adjustment applied to the batch average in the benchmark.
	FloatC3 decimal.Decimal
}

// NewConfig builds a Config from float-valued parameters as they arrive from
// the configuration file. NewFromFloat keeps the shortest exact decimal
// representation of each value, so 0.05 enters the pipeline as exactly 0.05.
func NewConfig(name string, floatA, weightB, floatC3 float64) Config {
	return Config{
		Name:    name,
		FloatA:  decimal.NewFromFloat(floatA),
		WeightB: decimal.NewFromFloat(weightB),
		FloatC3: decimal.NewFromFloat(floatC3),
	}
}
