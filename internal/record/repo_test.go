package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() Record {
	return Record{
		Items: []PriceItem{
			{
				Price:          decimal.NewFromInt(5200),
				BidFloatRate:   decimal.RequireFromString("-0.0344"),
				ConfigName:     "A",
				FinalFloatA:    decimal.RequireFromString("0.05"),
				BenchmarkPrice: decimal.RequireFromString("5228.70"),
				Score:          decimal.RequireFromString("99.45"),
			},
		},
		Timestamp: "2026-08-27 10:00:00",
		AvgPrice:  decimal.RequireFromString("5200.00"),
	}
}

// TestFileRepository_Load_MissingFile checks that a missing result file loads
// as an empty log instead of an error.
func TestFileRepository_Load_MissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "result.json"))

	log, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, log.Records)
	assert.NotNil(t, log.Records, "missing file should load as empty record set")
}

// TestFileRepository_AppendLoadRoundTrip checks that an appended record is
// read back unchanged.
func TestFileRepository_AppendLoadRoundTrip(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "result.json"))
	rec := testRecord()

	updated, err := repo.Append(rec)
	require.NoError(t, err)
	require.Len(t, updated.Records, 1)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Records, 1)

	got := loaded.Records[0]
	assert.Equal(t, rec.Timestamp, got.Timestamp)
	assert.True(t, rec.AvgPrice.Equal(got.AvgPrice), "avg_price should round-trip")
	require.Len(t, got.Items, 1)
	assert.Equal(t, rec.Items[0].ConfigName, got.Items[0].ConfigName)
	assert.True(t, rec.Items[0].Price.Equal(got.Items[0].Price))
	assert.True(t, rec.Items[0].BidFloatRate.Equal(got.Items[0].BidFloatRate))
	assert.True(t, rec.Items[0].FinalFloatA.Equal(got.Items[0].FinalFloatA))
	assert.True(t, rec.Items[0].BenchmarkPrice.Equal(got.Items[0].BenchmarkPrice))
	assert.True(t, rec.Items[0].Score.Equal(got.Items[0].Score))
}

// TestFileRepository_Append_KeepsOrder checks that records stay in append
// order.
func TestFileRepository_Append_KeepsOrder(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "result.json"))

	first := testRecord()
	first.Timestamp = "2026-08-27 10:00:00"
	second := testRecord()
	second.Timestamp = "2026-08-27 11:00:00"

	_, err := repo.Append(first)
	require.NoError(t, err)
	log, err := repo.Append(second)
	require.NoError(t, err)

	require.Len(t, log.Records, 2)
	assert.Equal(t, first.Timestamp, log.Records[0].Timestamp)
	assert.Equal(t, second.Timestamp, log.Records[1].Timestamp)
}

// TestFileRepository_Reset checks that resetting yields an empty record set,
// on the returned log and on disk.
func TestFileRepository_Reset(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "result.json"))

	_, err := repo.Append(testRecord())
	require.NoError(t, err)

	log, err := repo.Reset()
	require.NoError(t, err)
	assert.Empty(t, log.Records)

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Records)
}

// TestFileRepository_Load_MalformedFile checks that a corrupt document
// surfaces as a StorageError.
func TestFileRepository_Load_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileRepository(path)
	_, err := repo.Load()
	require.Error(t, err)

	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "load", storageErr.Op)
}
