package server

import (
	"context"
	"net/http"
	"time"

	"bidscore/internal/journal"
	"bidscore/internal/record"
	"bidscore/internal/score"
)

// Server encapsulates the HTTP server of the application, providing
// controlled startup and shutdown. Uses a customizable router and ensures
// timeouts for security and stability.
type Server struct {
	// server — embedded HTTP server from net/http package, fully configured
	// and ready to use.
	server *http.Server
}

// ListenAndServe starts the HTTP server and begins listening on the specified
// address. Blocks execution until the server is stopped or an error occurs.
// If server is stopped via Shutdown, method returns http.ErrServerClosed.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server with the provided context. Stops
// listening, terminates accepting new connections, and allows active
// connections to complete within the timeout specified in the context.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// NewServer creates and configures a new server instance.
//
// Parameters:
// - address: address and port to listen on (e.g., ":8080").
// - static: path to directory with static files to be served, can be empty.
// - evaluator: the evaluation pipeline run for POST requests.
// - records: result log queried and cleared by the history endpoints.
// - evalJournal: journal every computed record is appended to.
//
// Sets secure timeouts for reading and writing, and limits header size.
// Returns pointer to a ready-to-run server.
func NewServer(
	address string,
	static string,
	evaluator *score.Evaluator,
	records record.Repository,
	evalJournal journal.Journal,
) *Server {
	router := NewApiV1Router(static, evaluator, records, evalJournal)
	s := Server{&http.Server{
		Addr:           address,
		Handler:        router.Mux(),
		ReadTimeout:    time.Second * 3,
		WriteTimeout:   time.Second * 3,
		MaxHeaderBytes: 1024 * 10,
	}}

	return &s
}
