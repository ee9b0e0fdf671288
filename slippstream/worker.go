package slippstream

import (
	"fmt"
	"log/slog"
	"time"
)

// worker owns the link for one session. Everything it shares with the
// client goes through the inbox, the stop channel and the ready/done
// channels.
type worker struct {
	address  string
	port     int
	attempts int
	wait     time.Duration

	dial    Dialer
	inbox   *inbox
	stop    <-chan struct{}
	done    chan<- struct{}
	logger  *slog.Logger
	metrics *Metrics

	handshake []byte
}

// run dials, waits for the link, reports the outcome on ready, and then
// forwards packets until the peer disconnects or stop is closed.
func (w *worker) run(ready chan<- error) {
	defer close(w.done)
	defer w.inbox.close()

	link, err := w.dial(w.address, w.port)
	if err != nil {
		ready <- NewConnectionError("dial failed", err)
		return
	}
	defer link.Close()

	if err := w.connect(link); err != nil {
		ready <- err
		return
	}
	ready <- nil

	w.loop(link)
}

// connect waits for the CONNECT event for up to w.attempts service waits
// and sends the handshake once it arrives.
func (w *worker) connect(link Link) error {
	for attempt := 1; attempt <= w.attempts; attempt++ {
		if w.stopped() {
			return NewConnectionError("shut down while connecting", nil)
		}

		w.metrics.recordConnectAttempt()
		ev, err := link.Service(w.wait)
		if err != nil {
			return NewConnectionError("service failed", err)
		}
		if ev.Type != LinkConnect {
			w.logger.Debug("waiting for connect event",
				"attempt", attempt,
				"event", ev.Type.String())
			continue
		}

		if err := w.sendHandshake(link); err != nil {
			return NewConnectionError("handshake failed", err)
		}
		w.logger.Info("connected", "attempts", attempt)
		return nil
	}
	return NewConnectionError(
		fmt.Sprintf("no connect event from %s:%d after %d attempts", w.address, w.port, w.attempts), nil)
}

func (w *worker) loop(link Link) {
	for !w.stopped() {
		ev, err := link.Service(w.wait)
		if err != nil {
			w.logger.Error("service failed", "error", err)
			return
		}

		switch ev.Type {
		case LinkNone:
		case LinkReceive:
			if len(ev.Data) == 0 {
				// Sent at the end of a game.
				w.logger.Debug("skipping empty packet")
				w.metrics.recordEmptyPacket()
				continue
			}
			if !w.inbox.push(ev.Data, w.stop) {
				return
			}
			w.metrics.recordInboxDepth(w.inbox.len())
		case LinkConnect:
			if err := w.sendHandshake(link); err != nil {
				w.logger.Error("handshake failed", "error", err)
				return
			}
			w.logger.Info("reconnected, handshake resent")
		case LinkDisconnect:
			w.logger.Info("console disconnected")
			w.metrics.recordDisconnect()
			return
		}
	}
}

func (w *worker) sendHandshake(link Link) error {
	if err := link.Send(w.handshake); err != nil {
		return err
	}
	w.metrics.recordHandshake()
	return nil
}

func (w *worker) stopped() bool {
	select {
	case <-w.stop:
		return true
	default:
		return false
	}
}
