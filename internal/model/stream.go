package model

import "encoding/json"

const (
	JoinFamilyEvent = "join_family"
	NewMessageEvent = "new_message"
)

// StreamFrame is the envelope of every websocket frame exchanged with the
// streaming server.
type StreamFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type StreamEventKind int

const (
	StreamConnecting StreamEventKind = iota
	StreamConnected
	StreamDisconnected
	StreamMessage
	StreamGaveUp
)

func (k StreamEventKind) String() string {
	switch k {
	case StreamConnecting:
		return "connecting"
	case StreamConnected:
		return "connected"
	case StreamDisconnected:
		return "disconnected"
	case StreamMessage:
		return "message"
	case StreamGaveUp:
		return "gave_up"
	}
	return "unknown"
}

type StreamEvent struct {
	Kind    StreamEventKind
	Message *Message
	Err     error
}
