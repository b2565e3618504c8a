// Package handler provides HTTP request handlers for Soul Forge.
//
// This package implements the mint relay API, operation status
// lookups, and the health probes.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/core/service"
	"github.com/twistedsoul/forge-go/internal/telemetry/logger"
)

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	mintSvc *service.MintService
	logger  logger.Logger
	mux     *http.ServeMux
}

// New creates a new Handler with the given services.
func New(mintSvc *service.MintService, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		mintSvc: mintSvc,
		logger:  log,
		mux:     http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints (no auth required)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Mint relay endpoints
	h.mux.HandleFunc("POST /api/mint", h.handleMint)
	h.mux.HandleFunc("GET /api/operations", h.handleListOperations)
	h.mux.HandleFunc("GET /api/operations/{id}", h.handleGetOperation)
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("X-Error-Code", code)
	h.writeJSON(w, status, &ErrorResponse{
		OK:        false,
		Error:     message,
		ErrorCode: code,
	})
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4080"), strings.HasSuffix(code, "-4081"):
		return http.StatusGatewayTimeout
	case strings.HasPrefix(code, "TS-SUP-"), strings.HasPrefix(code, "TS-MAN-"),
		strings.HasPrefix(code, "TS-ARG-"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4000"), strings.HasSuffix(code, "-4020"):
		return http.StatusUnprocessableEntity
	case strings.HasSuffix(code, "-4990"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-5030"), strings.HasSuffix(code, "-5031"):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		h.writeError(w, errorCodeToHTTPStatus(code), code, err.Error())
		return
	}

	h.logger.Error("internal error", "error", err)
	h.writeError(w, http.StatusInternalServerError, "TS-SYS-5000", "internal server error")
}
