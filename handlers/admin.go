// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/poll"
)

type AdminHandler struct {
	engine  *poll.Engine
	metrics *metrics.Metrics
}

func NewAdminHandler(engine *poll.Engine, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{engine: engine, metrics: m}
}

// Start handles POST /admin/start
func (h *AdminHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "start", "Poll started", h.engine.Start)
}

// End handles POST /admin/end
func (h *AdminHandler) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "end", "Poll ended", h.engine.End)
}

// Reset handles POST /admin/reset
// Ends the poll and deletes every ballot
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reset", "Poll reset", h.engine.Reset)
}

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, name, msg string, apply func(context.Context, string) error) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.metrics.AdminTransition(name, "invalid_request")
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidRequest)
		return
	}

	if err := apply(r.Context(), req.Key); err != nil {
		o := outcomeFor(err)
		h.metrics.AdminTransition(name, o.decision)
		if o.status == http.StatusInternalServerError {
			slog.Error("admin transition failed", "transition", name, "error", err)
		} else {
			slog.Warn("admin transition rejected", "transition", name, "client", middleware.GetClientIP(r))
		}
		middleware.ErrorResponse(w, o.status, o.msg)
		return
	}

	h.metrics.AdminTransition(name, "ok")
	slog.Info(msg, "transition", name)
	middleware.JSONResponse(w, http.StatusOK, models.Response{Success: true, Msg: msg})
}
