package slippstream

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config holds the connection settings for a Client.
type Config struct {
	Address string
	Port    int
	// ConnectAttempts is how many ServiceWait intervals Connect waits for
	// the link to come up.
	ConnectAttempts int
	ServiceWait     time.Duration
	// InboxCapacity bounds the messages buffered between the worker and
	// Dispatch.
	InboxCapacity int
}

// DefaultConfig returns the settings for a local Slippi Dolphin.
func DefaultConfig() Config {
	return Config{
		Address:         DefaultAddress,
		Port:            DefaultPort,
		ConnectAttempts: ConnectAttempts,
		ServiceWait:     ServiceWait,
		InboxCapacity:   DefaultInboxCapacity,
	}
}

// Endpoint returns address:port.
func (c Config) Endpoint() string {
	return c.Address + ":" + strconv.Itoa(c.Port)
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDialer replaces the ENet dialer, mostly for tests.
func WithDialer(dial Dialer) Option {
	return func(c *Client) {
		c.dial = dial
	}
}

// WithMetrics records session metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client is a SlippiComm stream client for one session.
type Client struct {
	mu sync.Mutex

	cfg     Config
	logger  *slog.Logger
	dial    Dialer
	metrics *Metrics

	sessionID string
	running   bool
	err       error

	inbox *inbox
	stop  chan struct{}
	done  chan struct{}
}

// NewClient creates a client. Nothing is dialed until Connect.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.ConnectAttempts <= 0 {
		cfg.ConnectAttempts = ConnectAttempts
	}
	if cfg.ServiceWait <= 0 {
		cfg.ServiceWait = ServiceWait
	}
	if cfg.InboxCapacity <= 0 {
		cfg.InboxCapacity = DefaultInboxCapacity
	}
	c := &Client{
		cfg:    cfg,
		logger: slog.Default().With("component", "slippstream"),
		dial:   DialENet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the client's settings.
func (c *Client) Config() Config {
	return c.cfg
}

// Connect starts the worker, waits for the link to come up and sends the
// handshake. It reports false on any failure, with the cause available from
// Err; the worker is stopped before Connect returns false. A Shutdown that
// lands while the link is coming up makes Connect fail with ErrNotRunning.
// Connect waits at most ConnectAttempts service intervals, or until ctx is
// done.
func (c *Client) Connect(ctx context.Context) bool {
	c.mu.Lock()
	if c.stop != nil {
		c.err = ErrAlreadyConnected
		c.mu.Unlock()
		return false
	}
	c.err = nil
	c.sessionID = uuid.NewString()
	c.inbox = newInbox(c.cfg.InboxCapacity)
	stop := make(chan struct{})
	c.stop = stop
	c.done = make(chan struct{})
	logger := c.logger.With("session", c.sessionID, "endpoint", c.cfg.Endpoint())

	w := &worker{
		address:   c.cfg.Address,
		port:      c.cfg.Port,
		attempts:  c.cfg.ConnectAttempts,
		wait:      c.cfg.ServiceWait,
		dial:      c.dial,
		inbox:     c.inbox,
		stop:      stop,
		done:      c.done,
		logger:    logger,
		metrics:   c.metrics,
		handshake: handshakeRequest(),
	}
	c.mu.Unlock()

	ready := make(chan error, 1)
	go w.run(ready)

	var err error
	select {
	case err = <-ready:
	case <-ctx.Done():
		err = NewConnectionError("connect cancelled", ctx.Err())
	}

	if err != nil {
		c.Shutdown()
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		logger.Error("connect failed", "error", err)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != stop {
		// Shutdown ran while the link was coming up.
		c.err = ErrNotRunning
		return false
	}
	c.running = true
	return true
}

// Err returns why the last Connect failed, or nil.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Running reports whether Connect succeeded and Shutdown has not been
// called since. A client whose console disconnected is still running until
// it is shut down.
func (c *Client) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// SessionID identifies the current (or last) session in logs.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Dispatch returns the next message from the console.
//
// In blocking mode it waits until a message arrives. In polling mode it waits
// at most timeout and returns (nil, nil) if nothing arrived. Once the console
// has disconnected and every earlier message has been delivered, it returns
// ErrDisconnected. A packet that is not a valid envelope yields an
// *EnvelopeError and the session carries on.
func (c *Client) Dispatch(polling bool, timeout time.Duration) (*Message, error) {
	c.mu.Lock()
	running, in := c.running, c.inbox
	c.mu.Unlock()
	if !running {
		return nil, ErrNotRunning
	}

	var wait <-chan time.Time
	if polling {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		wait = timer.C
	}

	data, err := in.pop(wait)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	c.metrics.recordInboxDepth(in.len())

	msg, err := DecodeMessage(data)
	if err != nil {
		c.metrics.recordEnvelopeError()
		return nil, err
	}
	c.metrics.recordMessage(msg.Type)
	return msg, nil
}

// Shutdown stops the worker and waits for it to exit, which takes at most
// about one ServiceWait. It is safe to call more than once and before
// Connect.
func (c *Client) Shutdown() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop = nil
	c.done = nil
	c.running = false
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// IsDisconnected reports whether err means the stream has ended.
func IsDisconnected(err error) bool {
	return errors.Is(err, ErrDisconnected)
}
