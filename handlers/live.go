// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/notify"
	"github.com/danielhkuo/quickly-vote/poll"
)

// resultsEvent is the SSE event name carrying a totals array
const resultsEvent = "results"

type LiveHandler struct {
	engine *poll.Engine
	hub    *notify.Hub
}

func NewLiveHandler(engine *poll.Engine, hub *notify.Hub) *LiveHandler {
	return &LiveHandler{engine: engine, hub: hub}
}

// Stream handles GET /live
// Pushes the current totals on connect, then every update from the hub
func (h *LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	// Subscribe before reading totals so no commit falls in between
	observer, ok := h.hub.Subscribe()
	if !ok {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Server shutting down")
		return
	}
	defer h.hub.Unsubscribe(observer)

	totals, err := h.engine.Totals(r.Context())
	if err != nil {
		slog.Error("failed to compute totals", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgStorageError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	slog.Info("live observer connected", "observer", observer.ID)
	defer slog.Info("live observer disconnected", "observer", observer.ID)

	if err := writeEvent(w, totals); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case totals, open := <-observer.C:
			if !open {
				return
			}
			if err := writeEvent(w, totals); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, totals []int) error {
	data, err := json.Marshal(totals)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", resultsEvent, data)
	return err
}
