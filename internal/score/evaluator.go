package score

import (
	"math"
	"sort"
	"time"

	"bidscore/internal/record"

	"github.com/shopspring/decimal"
)

// Evaluator drives one evaluation run over a batch of bid prices: it
// validates the input, computes the batch average once, runs the per-item
// pipeline (configuration selection, float rate, final float A, benchmark
// price, score), sorts the items by score and appends the finished record to
// the result log.
//
// The evaluator holds no mutable state between calls; distinct calls are safe
// to run in parallel as long as the record repository serializes its appends,
// which the file repository does.
type Evaluator struct {
	// standardPrice — reference price all bids are measured against.
	standardPrice decimal.Decimal
	// configs — the available scoring configurations, selected from per item.
	configs []Config
	// selector — configuration selection strategy.
	selector Selector
	// records — result log the finished record is appended to.
	records record.Repository
	// now — clock, time.Now outside of tests.
	now func() time.Time
}

// NewEvaluator creates an evaluator for the given standard price,
// configuration list, selection strategy and result log. An empty
// configuration list is accepted here and only fails at evaluation time,
// inside the selector.
func NewEvaluator(standardPrice decimal.Decimal, configs []Config, selector Selector, records record.Repository) *Evaluator {
	return &Evaluator{
		standardPrice: standardPrice,
		configs:       configs,
		selector:      selector,
		records:       records,
		now:           time.Now,
	}
}

// Calc evaluates a batch of bid prices and returns the persisted record.
//
// The call runs in three phases with no retries and no partial success:
// validation (non-empty list, every price finite and non-negative), batch
// aggregation (the average is computed once and reused as a fixed constant in
// every item's benchmark), and the independent per-item pipeline. Items are
// sorted by score descending with a stable sort, so ties keep input order.
//
// Any failure aborts the whole call before the log is touched; the log never
// sees a partially built record.
func (e *Evaluator) Calc(prices []float64) (record.Record, error) {
	if err := validatePrices(prices); err != nil {
		return record.Record{}, err
	}

	decimals := make([]decimal.Decimal, len(prices))
	for i, p := range prices {
		decimals[i] = decimal.NewFromFloat(p)
	}
	avgPrice := Average(decimals)

	items := make([]record.PriceItem, 0, len(decimals))
	for _, price := range decimals {
		cfg, err := e.selector.Select(e.configs)
		if err != nil {
			return record.Record{}, err
		}

		bidFloatRate := BidFloatRate(price, e.standardPrice)
		finalFloatA := FinalFloatA(bidFloatRate, cfg.FloatA)
		benchmarkPrice := BenchmarkPrice(avgPrice, e.standardPrice, cfg, finalFloatA)
		bidScore, err := BidScore(price, benchmarkPrice)
		if err != nil {
			return record.Record{}, err
		}

		items = append(items, record.PriceItem{
			Price:          price,
			BidFloatRate:   bidFloatRate,
			ConfigName:     cfg.Name,
			FinalFloatA:    finalFloatA,
			BenchmarkPrice: benchmarkPrice,
			Score:          bidScore,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score.GreaterThan(items[j].Score)
	})

	rec := record.Record{
		Items:     items,
		Timestamp: e.now().Format(record.TimeLayout),
		AvgPrice:  avgPrice,
	}
	if _, err := e.records.Append(rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

func validatePrices(prices []float64) error {
	if len(prices) == 0 {
		return NewValidationError("price list must not be empty")
	}
	for _, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return NewValidationError("price list contains a non-numeric value")
		}
		if p < 0 {
			return NewValidationError("price list contains a negative price")
		}
	}
	return nil
}
