package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"bidscore/internal/journal"
	"bidscore/internal/record"
	"bidscore/internal/score"
)

// ApiV1Router manages routes for API version 1. Handles running evaluations,
// reading the result log, clearing it, and serving static files.
type ApiV1Router struct {
	// evaluator — the evaluation pipeline.
	evaluator *score.Evaluator
	// records — result log read by the history endpoint and cleared by reset.
	records record.Repository
	// journal — rotating audit trail of computed records.
	journal journal.Journal
	// static — path to directory with static files (e.g., a web front end).
	// If empty, static file serving is disabled.
	static string
}

// calcRequest is the body of an evaluation request.
type calcRequest struct {
	Prices []float64 `json:"prices"`
}

// errorResponse carries a human-readable error message to the caller.
type errorResponse struct {
	Error string `json:"error"`
}

// Mux returns a configured *http.ServeMux with registered handlers.
// Registers the following routes:
// - POST /api/v1/evaluations — runs one evaluation and returns the record
// - GET /api/v1/evaluations — returns the full result log
// - DELETE /api/v1/evaluations — clears the result log
// - GET /static/... — serves static files (if enabled)
func (ar *ApiV1Router) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/evaluations", ar.calcHandler)
	mux.HandleFunc("GET /api/v1/evaluations", ar.historyHandler)
	mux.HandleFunc("DELETE /api/v1/evaluations", ar.resetHandler)

	if len(ar.static) != 0 {
		fs := http.FileServer(http.Dir(ar.static))
		mux.Handle("GET /static/", http.StripPrefix("/static/", fs))
	}

	return mux
}

// calcHandler handles POST requests with a bid price batch. Expects a JSON
// body with a "prices" array. A malformed body is 422; validation,
// configuration and arithmetic errors are 400 with a JSON error message;
// storage failures are 500. On success the record is journaled and returned.
func (ar *ApiV1Router) calcHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Warn("Empty evaluation request body", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	defer r.Body.Close()

	var request calcRequest
	if err := json.Unmarshal(body, &request); err != nil {
		slog.Warn("Unable to unmarshal evaluation request body", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	rec, err := ar.evaluator.Calc(request.Prices)
	if err != nil {
		slog.Warn("Evaluation failed", "error", err)
		var storageErr *record.StorageError
		if errors.As(err, &storageErr) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ar.journal.Append(rec)
	writeJSON(w, http.StatusOK, rec)
}

// historyHandler returns the full persisted result log.
func (ar *ApiV1Router) historyHandler(w http.ResponseWriter, r *http.Request) {
	log, err := ar.records.Load()
	if err != nil {
		slog.Error("Unable to load result log", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, log)
}

// resetHandler clears the result log and returns the emptied log.
func (ar *ApiV1Router) resetHandler(w http.ResponseWriter, r *http.Request) {
	log, err := ar.records.Reset()
	if err != nil {
		slog.Error("Unable to reset result log", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, log)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Unable to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// NewApiV1Router creates a new API v1 router.
// Parameters:
// - static: path to static files (can be empty)
// - evaluator: evaluation pipeline
// - records: result log repository
// - evalJournal: evaluation journal
//
// Returns pointer to configured ApiV1Router.
func NewApiV1Router(
	static string,
	evaluator *score.Evaluator,
	records record.Repository,
	evalJournal journal.Journal,
) *ApiV1Router {
	return &ApiV1Router{
		evaluator: evaluator,
		records:   records,
		journal:   evalJournal,
		static:    static,
	}
}
