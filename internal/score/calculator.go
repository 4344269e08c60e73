package score

import "github.com/shopspring/decimal"

// Every formula rounds its own result before the next step consumes it:
// ratios carry 4 fractional digits, prices and scores carry 2. Intermediate
// rounding is part of the observable contract, not an implementation detail.
// decimal.Round and DivRound round half away from zero, which is the
// round-half-up behavior the formulas require.
const (
	ratePrecision  = 4
	pricePrecision = 2
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// Tier boundaries and adjustments for the final float A parameter.
	// Policy constants; each interval is inclusive on its lower bound.
	tierLow     = decimal.RequireFromString("0.08")
	tierHigh    = decimal.RequireFromString("0.15")
	tierMidAdj  = decimal.RequireFromString("0.025")
	tierHighAdj = decimal.RequireFromString("0.05")

	// Deduction factors: 2 points per 1% above benchmark, 1 point per 1% below.
	aboveFactor = decimal.NewFromInt(200)
	belowFactor = decimal.NewFromInt(100)
)

// Average returns the batch average price rounded to 2 digits. The list must
// be non-empty; the evaluator validates that before any arithmetic runs.
func Average(prices []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p)
	}
	return sum.DivRound(decimal.NewFromInt(int64(len(prices))), pricePrecision)
}

// BidFloatRate returns (price − standardPrice) / standardPrice rounded to
// 4 digits. A non-zero standard price is a configuration precondition and is
// not checked here.
func BidFloatRate(price, standardPrice decimal.Decimal) decimal.Decimal {
	return price.Sub(standardPrice).DivRound(standardPrice, ratePrecision)
}

// FinalFloatA adjusts a configuration's float A parameter by the bid's float
// rate tier and rounds the result to 4 digits.
func FinalFloatA(bidFloatRate, floatA decimal.Decimal) decimal.Decimal {
	var result decimal.Decimal
	switch {
	case bidFloatRate.LessThanOrEqual(tierLow):
		result = floatA
	case bidFloatRate.LessThanOrEqual(tierHigh):
		result = floatA.Sub(tierMidAdj)
	default:
		result = floatA.Sub(tierHighAdj)
	}
	return result.Round(ratePrecision)
}

// BenchmarkPrice blends the batch average and the standard price into the
// evaluation baseline, rounded to 2 digits:
//
//	avgPrice·(1+floatC3)·weightB + standardPrice·(1−finalFloatA)·(1−weightB)
//
// WeightB and FloatC3 are taken as-is; no bounds are enforced.
func BenchmarkPrice(avgPrice, standardPrice decimal.Decimal, cfg Config, finalFloatA decimal.Decimal) decimal.Decimal {
	averageTerm := avgPrice.Mul(one.Add(cfg.FloatC3)).Mul(cfg.WeightB)
	standardTerm := standardPrice.Mul(one.Sub(finalFloatA)).Mul(one.Sub(cfg.WeightB))
	return averageTerm.Add(standardTerm).Round(pricePrecision)
}

// BidScore rates a bid against its benchmark price on a 0..100 scale with
// 2 digits. The deviation ratio is rounded to 4 digits first; bids above the
// benchmark lose 2 points per 1% of deviation, bids at or below it lose
// 1 point per 1%. The score is floored at zero.
//
// A zero benchmark price makes the deviation undefined and returns an
// ArithmeticError.
func BidScore(price, benchmarkPrice decimal.Decimal) (decimal.Decimal, error) {
	if benchmarkPrice.IsZero() {
		return decimal.Decimal{}, NewArithmeticError("benchmark price is zero, deviation is undefined")
	}

	deviation := price.Sub(benchmarkPrice).DivRound(benchmarkPrice, ratePrecision)

	var deduction decimal.Decimal
	if deviation.IsPositive() {
		deduction = deviation.Mul(aboveFactor)
	} else {
		deduction = deviation.Abs().Mul(belowFactor)
	}

	result := hundred.Sub(deduction).Round(pricePrecision)
	if result.IsNegative() {
		return decimal.Zero, nil
	}
	return result, nil
}
