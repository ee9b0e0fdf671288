package slippstream

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// inbox is the one-way FIFO between the worker and the caller. It is
// bounded: when full, push blocks until the caller catches up or the
// worker is told to stop. Once closed, pop drains what is left and then
// reports ErrDisconnected.
type inbox struct {
	mu       sync.Mutex
	items    *queue.Queue
	capacity int
	closed   bool

	// One-slot wakeup signals. There is a single producer and a single
	// consumer, so a pending signal is never lost.
	notEmpty chan struct{}
	notFull  chan struct{}
}

func newInbox(capacity int) *inbox {
	if capacity <= 0 {
		capacity = DefaultInboxCapacity
	}
	return &inbox{
		items:    queue.New(),
		capacity: capacity,
		notEmpty: make(chan struct{}, 1),
		notFull:  make(chan struct{}, 1),
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// push appends data, waiting for room if needed. It returns false if the
// inbox was closed or stop fired first.
func (in *inbox) push(data []byte, stop <-chan struct{}) bool {
	for {
		in.mu.Lock()
		if in.closed {
			in.mu.Unlock()
			return false
		}
		if in.items.Length() < in.capacity {
			in.items.Add(data)
			in.mu.Unlock()
			signal(in.notEmpty)
			return true
		}
		in.mu.Unlock()

		select {
		case <-in.notFull:
		case <-stop:
			return false
		}
	}
}

// pop removes the oldest message. A nil wait channel blocks until a message
// arrives or the inbox closes; otherwise pop gives up with (nil, nil) when
// wait fires.
func (in *inbox) pop(wait <-chan time.Time) ([]byte, error) {
	for {
		in.mu.Lock()
		if in.items.Length() > 0 {
			data := in.items.Remove().([]byte)
			in.mu.Unlock()
			signal(in.notFull)
			return data, nil
		}
		if in.closed {
			in.mu.Unlock()
			return nil, ErrDisconnected
		}
		in.mu.Unlock()

		select {
		case <-in.notEmpty:
		case <-wait:
			return nil, nil
		}
	}
}

// close marks the end of the stream. It is safe to call more than once.
func (in *inbox) close() {
	in.mu.Lock()
	in.closed = true
	in.mu.Unlock()
	signal(in.notEmpty)
	signal(in.notFull)
}

func (in *inbox) len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.items.Length()
}
