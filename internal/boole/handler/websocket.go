// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     handler
// Description: WebSocket endpoint for interactive evaluation sessions
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	mdwerror "github.com/msto63/boole/foundation/core/error"
	"github.com/msto63/boole/internal/boole/service"
)

const (
	wsReadTimeout  = 120 * time.Second
	wsWriteTimeout = 10 * time.Second
	wsMaxMessage   = 64 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message types
const (
	WSTypePing        = "ping"
	WSTypePong        = "pong"
	WSTypeEvaluate    = "evaluate"
	WSTypeTable       = "table"
	WSTypeNormalForms = "normalforms"
	WSTypeSolve       = "solve"
	WSTypeResult      = "result"
	WSTypeError       = "error"
)

// WSMessage represents an incoming WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSResponse represents an outgoing WebSocket message. ID echoes the
// request's ID so clients can correlate pipelined requests.
type WSResponse struct {
	Type    string      `json:"type"`
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// WSErrorPayload is the payload of an error response
type WSErrorPayload = ErrorResponse

// HandleWebSocket upgrades the connection and serves messages until the
// client disconnects
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := h.logger.WithRequestID(session)
	logger.Info("WebSocket connected", "remote", r.RemoteAddr)

	conn.SetReadLimit(wsMaxMessage)
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	ctx := service.WithRequestID(r.Context(), session)

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed", "error", err.Error())
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		resp := h.handleMessage(ctx, &msg)
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn("WebSocket write failed", "error", err.Error())
			break
		}
	}

	logger.Info("WebSocket disconnected")
}

func (h *Handler) handleMessage(ctx context.Context, msg *WSMessage) WSResponse {
	switch msg.Type {
	case WSTypePing:
		return WSResponse{Type: WSTypePong, ID: msg.ID}

	case WSTypeEvaluate:
		var req service.EvaluateRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return invalidPayload(msg.ID, err)
		}
		res, err := h.svc.Evaluate(ctx, req)
		return reply(msg.ID, res, err)

	case WSTypeTable:
		var req ExpressionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return invalidPayload(msg.ID, err)
		}
		res, err := h.svc.TruthTable(ctx, req.Expression)
		return reply(msg.ID, res, err)

	case WSTypeNormalForms:
		var req ExpressionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return invalidPayload(msg.ID, err)
		}
		res, err := h.svc.NormalForms(ctx, req.Expression)
		return reply(msg.ID, res, err)

	case WSTypeSolve:
		var req ExpressionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return invalidPayload(msg.ID, err)
		}
		res, err := h.svc.Solve(ctx, req.Expression)
		return reply(msg.ID, res, err)

	default:
		return WSResponse{
			Type: WSTypeError,
			ID:   msg.ID,
			Payload: WSErrorPayload{
				Code:  string(mdwerror.CodeInvalidInput),
				Error: "unknown message type: " + msg.Type,
			},
		}
	}
}

func reply(id string, result interface{}, err error) WSResponse {
	if err != nil {
		payload, _ := ErrorFrom(err)
		return WSResponse{Type: WSTypeError, ID: id, Payload: payload}
	}
	return WSResponse{Type: WSTypeResult, ID: id, Payload: result}
}

func invalidPayload(id string, err error) WSResponse {
	return WSResponse{
		Type: WSTypeError,
		ID:   id,
		Payload: WSErrorPayload{
			Code:    string(mdwerror.CodeInvalidInput),
			Error:   "invalid payload",
			Details: err.Error(),
		},
	}
}
