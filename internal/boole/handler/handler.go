// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     handler
// Description: HTTP API for evaluation, truth tables, normal forms, solving
//              and history
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwlogic "github.com/msto63/boole/foundation/logic"
	"github.com/msto63/boole/internal/boole/service"
	"github.com/msto63/boole/internal/boole/store"
	"github.com/msto63/boole/pkg/core/health"
	"github.com/msto63/boole/pkg/core/logging"
)

// maxBodySize bounds request bodies
const maxBodySize = 1 << 20

// defaultHistoryLimit applies when the limit query parameter is absent
const defaultHistoryLimit = 50

// ExpressionRequest carries a single expression
type ExpressionRequest struct {
	Expression string `json:"expression"`
}

// HistoryResponse is a page of history records
type HistoryResponse struct {
	Records []*store.Record `json:"records"`
	Total   int             `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code,omitempty"`
	Details  string `json:"details,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// Handler handles HTTP requests for the API
type Handler struct {
	svc       *service.Service
	health    *health.Registry
	logger    *logging.Logger
	startTime time.Time
	version   string
}

// NewHandler creates a new API handler. A nil registry defaults to the
// service's own checks.
func NewHandler(version string, svc *service.Service, registry *health.Registry) *Handler {
	if registry == nil {
		registry = svc.HealthRegistry()
	}
	return &Handler{
		svc:       svc,
		health:    registry,
		logger:    logging.New("handler"),
		startTime: time.Now(),
		version:   version,
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		h.handleRoot(w, r)
	case path == "health":
		h.handleHealth(w, r)
	case path == "stats":
		h.handleStats(w, r)
	case path == "evaluate":
		h.handleEvaluate(w, r)
	case path == "table":
		h.handleTable(w, r)
	case path == "normalforms":
		h.handleNormalForms(w, r)
	case path == "solve":
		h.handleSolve(w, r)
	case path == "history":
		h.handleHistory(w, r)
	case strings.HasPrefix(path, "history/"):
		h.handleRecord(w, r, strings.TrimPrefix(path, "history/"))
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":    "boole API",
		"version": h.version,
		"endpoints": []string{
			"GET  /api/v1/health",
			"GET  /api/v1/stats",
			"POST /api/v1/evaluate",
			"POST /api/v1/table",
			"POST /api/v1/normalforms",
			"POST /api/v1/solve",
			"GET  /api/v1/history",
			"GET  /api/v1/history/{id}",
			"GET  /api/v1/ws",
		},
	}
	h.writeJSON(w, http.StatusOK, info)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	report := h.health.Check(r.Context())
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req service.EvaluateRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.svc.Evaluate(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req ExpressionRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.svc.TruthTable(r.Context(), req.Expression)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleNormalForms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req ExpressionRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.svc.NormalForms(r.Context(), req.Expression)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req ExpressionRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.svc.Solve(r.Context(), req.Expression)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, http.StatusBadRequest, string(mdwerror.CodeInvalidInput), "limit must be a non-negative integer", raw)
			return
		}
		limit = n
	}

	records, err := h.svc.History(r.Context(), limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*store.Record{}
	}
	h.writeJSON(w, http.StatusOK, HistoryResponse{Records: records, Total: len(records)})
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	rec, err := h.svc.Record(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// decode reads a JSON body into v and writes the error response on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, string(mdwerror.CodeInvalidInput), "Request body too large", "")
			return false
		}
		h.writeError(w, http.StatusBadRequest, string(mdwerror.CodeInvalidInput), "Failed to read request body", err.Error())
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		h.writeError(w, http.StatusBadRequest, string(mdwerror.CodeInvalidInput), "Invalid JSON", err.Error())
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// writeServiceError maps a structured error to its HTTP status
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	resp, status := ErrorFrom(err)
	if status >= http.StatusInternalServerError {
		h.logger.LogError(err)
	}
	h.writeJSON(w, status, resp)
}

// ErrorFrom builds the error response and HTTP status for err
func ErrorFrom(err error) (ErrorResponse, int) {
	code := mdwlogic.CodeOf(err)
	resp := ErrorResponse{Code: string(code), Error: err.Error()}

	if merr, ok := mdwerror.As(err); ok {
		resp.Error = merr.Message()
		if cause := merr.RootCause(); cause != nil && cause != error(merr) {
			resp.Details = cause.Error()
		}
		if pos, ok := merr.Details()["position"].(int); ok {
			resp.Position = &pos
		}
	}
	return resp, code.HTTPStatus()
}
