// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/notify"
	"github.com/danielhkuo/quickly-vote/poll"
)

// NewRouter wires every endpoint. hub may be nil when live updates are off;
// m may be nil to skip the metrics endpoint.
func NewRouter(engine *poll.Engine, hub *notify.Hub, m *metrics.Metrics, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(engine, m)
	resultsHandler := handlers.NewResultsHandler(engine)
	adminHandler := handlers.NewAdminHandler(engine, m)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations
	mux.HandleFunc("POST /login", middleware.WithLogging(votingHandler.Login))
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.Vote))

	// Results retrieval
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /user-results", middleware.WithLogging(resultsHandler.GetUserResults))
	mux.HandleFunc("GET /grouped-results", middleware.WithLogging(resultsHandler.GetGroupedResults))

	// Poll lifecycle (admin key in body)
	mux.HandleFunc("POST /admin/start", middleware.WithLogging(adminHandler.Start))
	mux.HandleFunc("POST /admin/end", middleware.WithLogging(adminHandler.End))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))

	// Open mode has no lifecycle to report
	if engine.Mode().Gated() {
		mux.HandleFunc("GET /status", middleware.WithLogging(resultsHandler.GetStatus))
		mux.HandleFunc("GET /my-vote/{username}", middleware.WithLogging(resultsHandler.GetMyVote))
	}

	if cfg.LiveUpdates && hub != nil {
		liveHandler := handlers.NewLiveHandler(engine, hub)
		mux.HandleFunc("GET /live", middleware.WithLogging(liveHandler.Stream))
	}

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Polling Backend Running"))
	})

	return mux
}
