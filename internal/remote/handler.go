// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     remote
// Description: WebSocket console, one interpreter session per connection
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SoarGroup/soarcli/foundation/cli"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/internal/commands"
	"github.com/SoarGroup/soarcli/internal/history"
	"github.com/SoarGroup/soarcli/internal/kernel"
)

const defaultIdleTimeout = 120 * time.Second

// HandlerConfig holds the per-connection session setup
type HandlerConfig struct {
	// Agent is shared by every connection; nil gives each connection its own
	Agent       *kernel.Agent
	AliasLines  []string
	History     history.Store
	IdleTimeout time.Duration
	Logger      *mdwlog.Logger

	// AllowedOrigins lists browser origins accepted besides the server's own
	// host, e.g. "http://localhost:3000". Requests without an Origin header
	// are always accepted.
	AllowedOrigins []string
}

// Handler serves the remote console over WebSocket
type Handler struct {
	cfg      HandlerConfig
	logger   *mdwlog.Logger
	upgrader websocket.Upgrader
	active   atomic.Int64
}

// NewHandler creates a WebSocket handler
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	h := &Handler{
		cfg:    cfg,
		logger: cfg.Logger.WithField("component", "remote"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin accepts non-browser clients, same-host pages and the
// configured origins
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	h.logger.Warn("Rejected WebSocket origin", mdwlog.Fields{"origin": origin})
	return false
}

// Active returns the number of open connections
func (h *Handler) Active() int64 {
	return h.active.Load()
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(r.Context(), conn)
}

// handleConnection runs one session until the peer disconnects. Requests are
// evaluated in order on the reading goroutine since a session is not safe
// for concurrent use.
func (h *Handler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	h.active.Add(1)
	defer h.active.Add(-1)

	out := &bytes.Buffer{}
	agent := h.cfg.Agent
	if agent == nil {
		agent = kernel.NewAgent("")
	}
	// Remote peers must not read files on the host
	env := &commands.Env{Out: out, Agent: agent, History: h.cfg.History, NoSource: true}

	session, err := commands.NewSession(env, commands.SessionOptions{
		Logger:     h.cfg.Logger,
		AliasLines: h.cfg.AliasLines,
	})
	if err != nil {
		h.logger.ErrorWithErr("Failed to create session", err)
		h.sendError(conn, string(mdwerror.GetCode(err)), err.Error())
		return
	}

	logger := h.logger.WithField("session_id", session.ID())
	logger.Info("WebSocket connection established", mdwlog.Fields{"remote": conn.RemoteAddr().String()})

	h.sendResponse(conn, Response{
		Type: TypeSession,
		Payload: SessionPayload{
			SessionID: session.ID(),
			Commands:  session.Registry().Names(),
		},
	})

	conn.SetReadDeadline(time.Now().Add(h.cfg.IdleTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.cfg.IdleTimeout))
		return nil
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WarnWithErr("WebSocket read error", err)
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.cfg.IdleTimeout))

		switch msg.Type {
		case TypePing:
			h.sendResponse(conn, Response{Type: TypePong})

		case TypeEval:
			var payload EvalPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid eval payload")
				continue
			}
			h.sendResponse(conn, Response{
				Type:    TypeResult,
				Payload: h.evaluate(ctx, session, out, payload.Input),
			})

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

func (h *Handler) evaluate(ctx context.Context, session *cli.Session, out *bytes.Buffer, input string) ResultPayload {
	// Nothing runs until the client resends the input with the missing lines
	if cli.NeedsMore(input) {
		return ResultPayload{Incomplete: true, Code: string(mdwerror.CodeUnexpectedEOF)}
	}

	out.Reset()
	err := session.Evaluate(input)

	result := ResultPayload{OK: err == nil, Output: out.String()}
	if err != nil {
		result.Error = err.Error()
		result.Code = string(mdwerror.GetCode(err))
	}

	if recErr := history.Record(ctx, h.cfg.History, session.ID(), input, err); recErr != nil {
		h.logger.WarnWithErr("Failed to record history", recErr)
	}
	return result
}

// sendResponse sends a response message via WebSocket
func (h *Handler) sendResponse(conn *websocket.Conn, resp Response) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.WarnWithErr("WebSocket send error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *Handler) sendError(conn *websocket.Conn, code, message string) {
	h.sendResponse(conn, Response{
		Type: TypeError,
		Payload: ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
