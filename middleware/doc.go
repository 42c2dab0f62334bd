// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Request IDs

WithRequestID wraps the whole mux. It keeps an incoming X-Request-ID or
generates a UUID, and echoes it on the response:

	id := middleware.RequestID(r.Context())

# Metrics

WithMetrics records request count and latency in Prometheus, labelled by
the matched route pattern:

	mux.HandleFunc("GET /api/hunts", middleware.WithMetrics(m, handler))

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and
X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "species_code is required")

Errors are written as {"error": "<message>"}.

Parse JSON request bodies:

	var req models.ApplicationPlanRequest
	err := middleware.ParseJSONBody(r, &req)

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
