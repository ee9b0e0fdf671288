package slippstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladfi1/libmelee/melee"
)

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Message
	}{
		{
			name: "connect reply",
			data: `{"type":"connect_reply","nick":"Dolphin","version":"3.4.0","cursor":42}`,
			want: Message{Type: MessageConnectReply, Nick: "Dolphin", Version: "3.4.0", Cursor: 42},
		},
		{
			name: "game event",
			data: `{"type":"game_event","payload":"OAAB","cursor":8,"next_cursor":9}`,
			want: Message{Type: MessageGameEvent, EncodedPayload: "OAAB", Cursor: 8, NextCursor: 9},
		},
		{
			name: "unknown type passes through",
			data: `{"type":"spectate_reply","extra":true}`,
			want: Message{Type: "spectate_reply"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeMessage([]byte(tt.data))
			require.NoError(t, err)
			tt.want.Raw = json.RawMessage(tt.data)
			assert.Equal(t, &tt.want, msg)
		})
	}
}

func TestDecodeMessageErrors(t *testing.T) {
	_, err := DecodeMessage([]byte(`[1,2]`))
	var envErr *EnvelopeError
	assert.ErrorAs(t, err, &envErr)

	_, err = DecodeMessage([]byte(`{}`))
	assert.ErrorIs(t, err, ErrMissingType)
}

func TestMessagePayload(t *testing.T) {
	msg := &Message{Type: MessageGameEvent, EncodedPayload: "OAAB"}
	data, err := msg.Payload()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x38, 0x00, 0x01}, data)
	assert.True(t, msg.HasPayload())

	e, ok := msg.EventType()
	assert.True(t, ok)
	assert.Equal(t, EventPostFrame, e)
	assert.Equal(t, "game_event POST_FRAME cursor=0", msg.String())

	empty := &Message{Type: MessageStartGame}
	data, err = empty.Payload()
	assert.NoError(t, err)
	assert.Nil(t, data)
	_, ok = empty.EventType()
	assert.False(t, ok)

	bad := &Message{Type: MessageMenuEvent, EncodedPayload: "!!"}
	_, err = bad.Payload()
	assert.Error(t, err)
}

func TestHandshakeRequest(t *testing.T) {
	assert.JSONEq(t, `{"type":"connect_request","cursor":0}`, string(handshakeRequest()))
}

func TestProtocolConstants(t *testing.T) {
	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"CommHandshake", uint8(CommHandshake), 0x01},
		{"CommReplay", uint8(CommReplay), 0x02},
		{"CommKeepAlive", uint8(CommKeepAlive), 0x03},
		{"CommMenu", uint8(CommMenu), 0x04},
		{"EventGeckoCodes", uint8(EventGeckoCodes), 0x10},
		{"EventPayloads", uint8(EventPayloads), 0x35},
		{"EventGameStart", uint8(EventGameStart), 0x36},
		{"EventFrameBookend", uint8(EventFrameBookend), 0x3c},
		{"EventMenu", uint8(EventMenu), 0x3e},
		{"EventPSInfo", uint8(EventPSInfo), 0x41},
		{"EventBones", uint8(EventBones), 0x60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestStageForEvent(t *testing.T) {
	s, ok := StageForEvent(EventDLInfo)
	assert.True(t, ok)
	assert.Equal(t, melee.Dreamland, s)

	_, ok = StageForEvent(EventPreFrame)
	assert.False(t, ok)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "MENU_EVENT", EventMenu.String())
	assert.Equal(t, "EVENT(0x99)", EventType(0x99).String())
	assert.Equal(t, "KEEPALIVE", CommKeepAlive.String())
}
