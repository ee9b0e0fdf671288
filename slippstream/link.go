package slippstream

import "time"

// LinkEventType is what a single Service call observed.
type LinkEventType int

const (
	// LinkNone means the wait elapsed with nothing to report.
	LinkNone LinkEventType = iota
	LinkConnect
	LinkReceive
	LinkDisconnect
)

func (t LinkEventType) String() string {
	switch t {
	case LinkConnect:
		return "connect"
	case LinkReceive:
		return "receive"
	case LinkDisconnect:
		return "disconnect"
	default:
		return "none"
	}
}

// LinkEvent is the result of servicing a link.
type LinkEvent struct {
	Type LinkEventType
	// Data is the received packet. It is only set for LinkReceive and is
	// owned by the caller.
	Data []byte
}

// Link is a reliable ordered datagram session with one peer.
//
// A Link is owned by a single goroutine; none of its methods are called
// concurrently.
type Link interface {
	// Service waits up to timeout for the next event.
	Service(timeout time.Duration) (LinkEvent, error)
	// Send queues a reliable packet for the peer.
	Send(data []byte) error
	// Close tears the session down and frees its resources.
	Close() error
}

// Dialer opens a link to address:port. The link does not have to be up
// yet; the client waits for a LinkConnect event.
type Dialer func(address string, port int) (Link, error)
