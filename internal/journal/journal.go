package journal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"bidscore/internal/record"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Journal is an append-only audit trail of computed evaluation records,
// separate from the result log: the log is the queryable state, the journal
// is the rotating on-disk history.
type Journal interface {
	Append(rec record.Record)
	Close()
}

// lineJSONHandler is a custom slog handler that outputs records in JSON
// format with time in the persisted "2006-01-02 15:04:05" layout and without
// the log level field. All attributes are written at the top level of the
// object, one object per line (JSONL).
type lineJSONHandler struct {
	out io.Writer
}

// NewLineJSONHandler creates a handler writing JSONL records to out.
func NewLineJSONHandler(out io.Writer) *lineJSONHandler {
	return &lineJSONHandler{out: out}
}

// Handle serializes a record to a single JSON line with the required time
// format and without the log level.
func (h *lineJSONHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]interface{})
	attrs["time"] = r.Time.Format(record.TimeLayout)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" && a.Value.Any() != nil {
			attrs[a.Key] = a.Value.Any()
		}

		return true
	})

	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}

	_, err = h.out.Write(append(data, '\n'))
	return err
}

// WithAttrs is not supported
func (h *lineJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	panic("WithAttrs is not supported by lineJSONHandler")
}

// WithGroup is not supported
func (h *lineJSONHandler) WithGroup(name string) slog.Handler {
	panic("WithGroup is not supported by lineJSONHandler")
}

// Enabled always returns true — every journal record is written.
func (h *lineJSONHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// JSONLJournal writes every evaluation record to a JSONL file with rotation
// and compression via lumberjack. Thread-safe through lumberjack and slog.
type JSONLJournal struct {
	lumberjack *lumberjack.Logger
	logger     *slog.Logger
}

// NewJSONLJournal creates a journal writing to file, rotating at maxSize MB
// and keeping maxBackups rotated files.
func NewJSONLJournal(file string, maxSize, maxBackups int) *JSONLJournal {
	j := JSONLJournal{}
	j.lumberjack = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	j.logger = slog.New(NewLineJSONHandler(j.lumberjack))
	return &j
}

// Append writes one evaluation record as a JSON line with its timestamp,
// average price and scored items.
func (j *JSONLJournal) Append(rec record.Record) {
	j.logger.Info("", "timestamp", rec.Timestamp, "avg_price", rec.AvgPrice, "items", rec.Items)
}

// Close closes the underlying file. Should be called when shutting down to
// ensure write completion and rotation of the last file.
func (j *JSONLJournal) Close() {
	j.lumberjack.Close()
}

// NopJournal discards every record. Used when no journal file is configured.
type NopJournal struct{}

func (NopJournal) Append(rec record.Record) {}

func (NopJournal) Close() {}
