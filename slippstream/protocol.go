package slippstream

import (
	"fmt"
	"time"

	"github.com/vladfi1/libmelee/melee"
)

// Connection defaults.
const (
	// DefaultAddress is where Slippi Dolphin listens when run locally.
	DefaultAddress = "127.0.0.1"

	// DefaultPort is the SlippiComm port.
	DefaultPort = 51441

	// ConnectAttempts is how many service waits Connect allows for the
	// link to come up.
	ConnectAttempts = 10

	// ServiceWait bounds each blocking service call on the link, and so
	// the latency of Shutdown.
	ServiceWait = 1 * time.Second

	// DefaultInboxCapacity is how many undelivered messages the worker
	// buffers before it stops servicing the link. A match produces about
	// 60 messages per second.
	DefaultInboxCapacity = 4096

	// HandshakeType is the envelope type of the connect request.
	HandshakeType = "connect_request"
)

// CommType is the SlippiComm message category.
type CommType uint8

const (
	CommHandshake CommType = 0x01
	CommReplay    CommType = 0x02
	CommKeepAlive CommType = 0x03
	CommMenu      CommType = 0x04
)

func (c CommType) String() string {
	switch c {
	case CommHandshake:
		return "HANDSHAKE"
	case CommReplay:
		return "REPLAY"
	case CommKeepAlive:
		return "KEEPALIVE"
	case CommMenu:
		return "MENU"
	default:
		return fmt.Sprintf("COMM(%d)", uint8(c))
	}
}

// EventType is the first byte of every replay event in a payload.
type EventType uint8

const (
	EventGeckoCodes   EventType = 0x10
	EventPayloads     EventType = 0x35
	EventGameStart    EventType = 0x36
	EventPreFrame     EventType = 0x37
	EventPostFrame    EventType = 0x38
	EventGameEnd      EventType = 0x39
	EventFrameStart   EventType = 0x3a
	EventItemUpdate   EventType = 0x3b
	EventFrameBookend EventType = 0x3c
	EventGeckoList    EventType = 0x3d
	// EventMenu is used for every menu event. Dolphin sometimes sends these
	// before the game has ended.
	EventMenu    EventType = 0x3e
	EventFoDInfo EventType = 0x3f
	EventDLInfo  EventType = 0x40
	EventPSInfo  EventType = 0x41
	EventBones   EventType = 0x60
)

var eventTypeNames = map[EventType]string{
	EventGeckoCodes:   "GECKO_CODES",
	EventPayloads:     "PAYLOADS",
	EventGameStart:    "GAME_START",
	EventPreFrame:     "PRE_FRAME",
	EventPostFrame:    "POST_FRAME",
	EventGameEnd:      "GAME_END",
	EventFrameStart:   "FRAME_START",
	EventItemUpdate:   "ITEM_UPDATE",
	EventFrameBookend: "FRAME_BOOKEND",
	EventGeckoList:    "GECKO_LIST",
	EventMenu:         "MENU_EVENT",
	EventFoDInfo:      "FOD_INFO",
	EventDLInfo:       "DL_INFO",
	EventPSInfo:       "PS_INFO",
	EventBones:        "BONES",
}

func (e EventType) String() string {
	if name, ok := eventTypeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EVENT(0x%02x)", uint8(e))
}

// StageForEvent returns the stage a stage-specific info event belongs to.
func StageForEvent(e EventType) (melee.Stage, bool) {
	switch e {
	case EventFoDInfo:
		return melee.FountainOfDreams, true
	case EventDLInfo:
		return melee.Dreamland, true
	case EventPSInfo:
		return melee.PokemonStadium, true
	default:
		return melee.NoStage, false
	}
}
