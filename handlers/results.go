// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/poll"
)

type ResultsHandler struct {
	engine *poll.Engine
}

func NewResultsHandler(engine *poll.Engine) *ResultsHandler {
	return &ResultsHandler{engine: engine}
}

// GetResults handles GET /results
// Returns per-option counts in option order
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	totals, err := h.engine.Totals(r.Context())
	if err != nil {
		slog.Error("failed to compute totals", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgStorageError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, totals)
}

// GetUserResults handles GET /user-results
func (h *ResultsHandler) GetUserResults(w http.ResponseWriter, r *http.Request) {
	votes, err := h.engine.PerUser(r.Context())
	if err != nil {
		slog.Error("failed to list ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgStorageError)
		return
	}

	results := make([]models.UserResult, 0, len(votes))
	for _, v := range votes {
		results = append(results, models.UserResult{Username: v.Identity, Voted: v.Label})
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetGroupedResults handles GET /grouped-results
func (h *ResultsHandler) GetGroupedResults(w http.ResponseWriter, r *http.Request) {
	groups, err := h.engine.Grouped(r.Context())
	if err != nil {
		slog.Error("failed to group ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgStorageError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, groups)
}

// GetStatus handles GET /status (gated mode only)
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	active, err := h.engine.PollActive(r.Context())
	if err != nil {
		slog.Error("failed to read poll state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgStorageError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{PollActive: active})
}

// GetMyVote handles GET /my-vote/{username} (gated mode only)
// Returns 403 while the poll is active; ballots stay hidden until it ends
func (h *ResultsHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidRequest)
		return
	}

	label, err := h.engine.MyVote(r.Context(), username)
	if err != nil {
		o := outcomeFor(err)
		if o.status == http.StatusInternalServerError {
			slog.Error("failed to read ballot", "error", err, "username", username)
		}
		middleware.ErrorResponse(w, o.status, o.msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVoteResponse{Success: true, Voted: label})
}
