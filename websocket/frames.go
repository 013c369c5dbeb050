package websocket

import (
	"encoding/json"
	"io"
)

// Server frame types.
const (
	FrameView     = "view"
	FrameSession  = "session"
	FrameMessages = "messages"
	FramePrompt   = "prompt"
	FrameRedirect = "redirect"
	FramePresence = "presence"
	FrameError    = "error"
)

// Client frame types.
const (
	ClientSend        = "send"
	ClientAuth        = "auth"
	ClientResubscribe = "resubscribe"
)

// Frame 是伺服器送給前端的訊息格式
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// ClientFrame 是前端送來的訊息格式
type ClientFrame struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Token string `json:"token,omitempty"`
}

type Presence struct {
	SessionID string `json:"sessionId"`
	Count     int    `json:"count"`
}

type Redirect struct {
	Target string `json:"target"`
}

type ErrorData struct {
	Message string `json:"message"`
}

func jsonEncode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
