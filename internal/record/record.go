package record

import "github.com/shopspring/decimal"

// TimeLayout is the timestamp format of persisted evaluation records.
const TimeLayout = "2006-01-02 15:04:05"

func init() {
	// The result document stores monetary values as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// PriceItem is a single scored bid price. Items are derived during an
// evaluation run and never mutated afterwards; they are owned by the Record
// that contains them.
type PriceItem struct {
	// Price — the submitted bid price.
	Price decimal.Decimal `json:"price"`
	// BidFloatRate — deviation of the bid from the standard price, 4 digits.
	BidFloatRate decimal.Decimal `json:"bid_float_rate"`
	// ConfigName — name of the scoring configuration drawn for this item.
	ConfigName string `json:"config_name"`
	// FinalFloatA — tier-adjusted float A parameter, 4 digits.
	FinalFloatA decimal.Decimal `json:"final_float_a"`
	// BenchmarkPrice — evaluation baseline for this item, 2 digits.
	BenchmarkPrice decimal.Decimal `json:"benchmark_price"`
	// Score — 0..100 rating, 2 digits.
	Score decimal.Decimal `json:"score"`
}

// Record is the outcome of one evaluation run: the scored items sorted by
// score descending, the wall-clock timestamp of the run, and the batch
// average price shared by every item's benchmark calculation.
type Record struct {
	Items     []PriceItem     `json:"items"`
	Timestamp string          `json:"timestamp"`
	AvgPrice  decimal.Decimal `json:"avg_price"`
}

// Log is the full persisted result log. Records keep append order; the log
// grows by whole-record append or is cleared entirely, never edited in place.
type Log struct {
	Records []Record `json:"records"`
}
