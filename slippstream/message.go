package slippstream

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// MessageType is the envelope discriminant.
type MessageType string

const (
	MessageConnectReply MessageType = "connect_reply"
	MessageGameEvent    MessageType = "game_event"
	MessageMenuEvent    MessageType = "menu_event"
	MessageStartGame    MessageType = "start_game"
	MessageEndGame      MessageType = "end_game"
	MessageKeepAlive    MessageType = "keep_alive"
)

// Message is one decoded envelope. Unknown types are passed through with
// Type set and Raw holding the original bytes.
type Message struct {
	Type MessageType `json:"type"`

	// connect_reply
	Nick    string `json:"nick,omitempty"`
	Version string `json:"version,omitempty"`

	// Cursor is the console's position in its event stream; NextCursor is
	// the position after this message.
	Cursor     int64 `json:"cursor,omitempty"`
	NextCursor int64 `json:"next_cursor,omitempty"`

	// EncodedPayload is the base64 payload of game and menu events.
	EncodedPayload string `json:"payload,omitempty"`

	// Raw is the envelope exactly as received.
	Raw json.RawMessage `json:"-"`
}

// DecodeMessage parses an envelope. The returned message keeps a copy of
// data in Raw.
func DecodeMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, &EnvelopeError{Data: data, Cause: err}
	}
	if msg.Type == "" {
		return nil, &EnvelopeError{Data: data, Cause: ErrMissingType}
	}
	msg.Raw = append(json.RawMessage(nil), data...)
	return &msg, nil
}

// HasPayload reports whether the message carries replay events.
func (m *Message) HasPayload() bool {
	return m.EncodedPayload != ""
}

// Payload decodes the base64 event payload. Messages without a payload
// return nil.
func (m *Message) Payload() ([]byte, error) {
	if m.EncodedPayload == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(m.EncodedPayload)
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return data, nil
}

// EventType returns the type of the first replay event in the payload.
func (m *Message) EventType() (EventType, bool) {
	data, err := m.Payload()
	if err != nil || len(data) == 0 {
		return 0, false
	}
	return EventType(data[0]), true
}

// String formats the message for logs and the console.
func (m *Message) String() string {
	switch m.Type {
	case MessageConnectReply:
		return fmt.Sprintf("%s nick=%q version=%s cursor=%d", m.Type, m.Nick, m.Version, m.Cursor)
	case MessageGameEvent, MessageMenuEvent:
		if e, ok := m.EventType(); ok {
			return fmt.Sprintf("%s %s cursor=%d", m.Type, e, m.Cursor)
		}
		return fmt.Sprintf("%s cursor=%d", m.Type, m.Cursor)
	default:
		return string(m.Type)
	}
}

type handshake struct {
	Type   string `json:"type"`
	Cursor int64  `json:"cursor"`
}

// handshakeRequest returns the connect request sent whenever the link
// comes up. Cursor 0 asks for the stream from the current position.
func handshakeRequest() []byte {
	data, _ := json.Marshal(handshake{Type: HandshakeType, Cursor: 0})
	return data
}
