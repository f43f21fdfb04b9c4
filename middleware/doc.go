// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Every request gets a uuid request id, returned in the X-Request-ID header.
Start (method, path, client) and completion (status, duration_ms) are
logged with slog. The wrapped writer still implements http.Flusher, so
server-sent events pass through.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidRequest)

ErrorResponse writes the same {success, msg} envelope the voting endpoints
use, with success set to false.

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidRequest)
		return
	}

Bodies larger than 1 MiB are truncated and fail to decode.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For (first hop), then X-Real-IP, then RemoteAddr.
*/
package middleware
