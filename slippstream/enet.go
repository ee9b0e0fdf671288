package slippstream

import (
	"fmt"
	"sync"
	"time"

	"github.com/codecat/go-enet"
)

var (
	enetOnce    sync.Once
	enetInitErr error
)

// enetLink is a Link over a single-peer ENet host.
type enetLink struct {
	host enet.Host
	peer enet.Peer
}

// DialENet is the default Dialer. It creates a client host with one peer
// and one channel and starts connecting to address:port.
func DialENet(address string, port int) (Link, error) {
	enetOnce.Do(func() {
		enetInitErr = enet.Initialize()
	})
	if enetInitErr != nil {
		return nil, fmt.Errorf("enet initialize: %w", enetInitErr)
	}

	host, err := enet.NewHost(nil, 1, 1, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("enet host: %w", err)
	}
	peer, err := host.Connect(enet.NewAddress(address, uint16(port)), 1, 0)
	if err != nil {
		host.Destroy()
		return nil, fmt.Errorf("enet connect %s:%d: %w", address, port, err)
	}
	return &enetLink{host: host, peer: peer}, nil
}

func (l *enetLink) Service(timeout time.Duration) (LinkEvent, error) {
	ev := l.host.Service(uint32(timeout.Milliseconds()))
	switch ev.GetType() {
	case enet.EventConnect:
		return LinkEvent{Type: LinkConnect}, nil
	case enet.EventReceive:
		packet := ev.GetPacket()
		// The packet buffer is freed by Destroy.
		data := append([]byte(nil), packet.GetData()...)
		packet.Destroy()
		return LinkEvent{Type: LinkReceive, Data: data}, nil
	case enet.EventDisconnect:
		return LinkEvent{Type: LinkDisconnect}, nil
	default:
		return LinkEvent{Type: LinkNone}, nil
	}
}

func (l *enetLink) Send(data []byte) error {
	return l.peer.SendBytes(data, 0, enet.PacketFlagReliable)
}

func (l *enetLink) Close() error {
	l.peer.DisconnectNow(0)
	l.host.Destroy()
	return nil
}
