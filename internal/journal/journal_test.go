package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bidscore/internal/record"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLJournal_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	j := NewJSONLJournal(path, 1, 1)
	defer j.Close()

	j.Append(record.Record{
		Items: []record.PriceItem{
			{
				Price:      decimal.NewFromInt(5200),
				ConfigName: "A",
				Score:      decimal.RequireFromString("99.45"),
			},
		},
		Timestamp: "2026-08-27 10:00:00",
		AvgPrice:  decimal.RequireFromString("5200.00"),
	})
	j.Close()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &line))
	assert.Equal(t, "2026-08-27 10:00:00", line["timestamp"])
	assert.InDelta(t, 5200.0, line["avg_price"], 0.001)
	assert.NotEmpty(t, line["items"])
	assert.Contains(t, line, "time")
}

func TestJSONLJournal_AppendsOneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	j := NewJSONLJournal(path, 1, 1)

	rec := record.Record{Timestamp: "2026-08-27 10:00:00", AvgPrice: decimal.NewFromInt(5000)}
	j.Append(rec)
	j.Append(rec)
	j.Close()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, countLines(content))
}

func countLines(content []byte) int {
	count := 0
	for _, b := range content {
		if b == '\n' {
			count++
		}
	}
	return count
}
