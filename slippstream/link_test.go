package slippstream

import (
	"errors"
	"sync"
	"time"
)

// fakeLink replays a script of events. Once the script runs out it behaves
// like an idle link: Service sleeps for the timeout and reports LinkNone.
type fakeLink struct {
	mu     sync.Mutex
	script []LinkEvent
	sent   [][]byte
	closed bool
	// serviceErr is returned by every Service call when set.
	serviceErr error
	// onSend runs at the start of every Send, outside the lock.
	onSend func()
}

func newFakeLink(script ...LinkEvent) *fakeLink {
	return &fakeLink{script: script}
}

func (l *fakeLink) Service(timeout time.Duration) (LinkEvent, error) {
	l.mu.Lock()
	if l.serviceErr != nil {
		l.mu.Unlock()
		return LinkEvent{}, l.serviceErr
	}
	if len(l.script) > 0 {
		ev := l.script[0]
		l.script = l.script[1:]
		l.mu.Unlock()
		return ev, nil
	}
	l.mu.Unlock()

	time.Sleep(timeout)
	return LinkEvent{Type: LinkNone}, nil
}

func (l *fakeLink) Send(data []byte) error {
	if l.onSend != nil {
		l.onSend()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return errors.New("send on closed link")
	}
	l.sent = append(l.sent, append([]byte(nil), data...))
	return nil
}

func (l *fakeLink) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

func (l *fakeLink) Sent() [][]byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([][]byte(nil), l.sent...)
}

func (l *fakeLink) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

func dialerFor(link *fakeLink) Dialer {
	return func(string, int) (Link, error) {
		return link, nil
	}
}

func connectEvent() LinkEvent {
	return LinkEvent{Type: LinkConnect}
}

func receive(data string) LinkEvent {
	return LinkEvent{Type: LinkReceive, Data: []byte(data)}
}

func disconnectEvent() LinkEvent {
	return LinkEvent{Type: LinkDisconnect}
}
