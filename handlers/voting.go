// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/poll"
)

type VotingHandler struct {
	engine  *poll.Engine
	metrics *metrics.Metrics
}

func NewVotingHandler(engine *poll.Engine, m *metrics.Metrics) *VotingHandler {
	return &VotingHandler{engine: engine, metrics: m}
}

// Login handles POST /login
// Tells the client whether the username may still vote
func (h *VotingHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidRequest)
		return
	}

	voted, err := h.engine.HasVoted(r.Context(), req.Username)
	if err != nil {
		slog.Error("failed to check ballot", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgStorageError)
		return
	}

	if voted {
		middleware.JSONResponse(w, http.StatusOK, models.Response{Success: false, Msg: models.MsgAlreadyVoted})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Response{Success: true})
}

// Vote handles POST /vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.Username == "" || req.Option == nil {
		h.metrics.VoteDecision("invalid_request")
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidRequest)
		return
	}

	err := h.engine.SubmitVote(r.Context(), req.Username, *req.Option)
	if err == nil {
		h.metrics.VoteDecision("accepted")
		slog.Info("vote accepted", "username", req.Username, "option", *req.Option)
		middleware.JSONResponse(w, http.StatusOK, models.Response{Success: true})
		return
	}

	if !poll.IsRejection(err) {
		h.metrics.VoteDecision("error")
		slog.Error("failed to record vote", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgVoteNotRecorded)
		return
	}

	o := outcomeFor(err)
	h.metrics.VoteDecision(o.decision)
	slog.Info("vote rejected", "username", req.Username, "option", *req.Option, "reason", o.decision)
	middleware.ErrorResponse(w, o.status, o.msg)
}
