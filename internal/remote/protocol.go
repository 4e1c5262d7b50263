package remote

import "encoding/json"

// Message types
const (
	TypeEval    = "eval"
	TypePing    = "ping"
	TypePong    = "pong"
	TypeResult  = "result"
	TypeSession = "session"
	TypeError   = "error"
)

// Message is a client request
type Message struct {
	Type    string          `json:"type"`              // "eval", "ping"
	Payload json.RawMessage `json:"payload,omitempty"` // Message-specific payload
}

// EvalPayload carries input to evaluate in the connection's session
type EvalPayload struct {
	Input string `json:"input"`
}

// Response is a server message
type Response struct {
	Type    string      `json:"type"`              // "session", "result", "error", "pong"
	Payload interface{} `json:"payload,omitempty"` // Response-specific payload
}

// SessionPayload is sent once when a connection is established
type SessionPayload struct {
	SessionID string   `json:"session_id"`
	Commands  []string `json:"commands"`
}

// ResultPayload reports the outcome of one eval request. Incomplete is set
// when the input ended inside a quote or brace and can be resent with more
// lines appended.
type ResultPayload struct {
	OK         bool   `json:"ok"`
	Output     string `json:"output"`
	Error      string `json:"error,omitempty"`
	Code       string `json:"code,omitempty"`
	Incomplete bool   `json:"incomplete,omitempty"`
}

// ErrorPayload reports a protocol error
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
