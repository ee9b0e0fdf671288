package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vladfi1/libmelee/slippstream"
)

// defaultPollInterval is one frame at 60 Hz.
const defaultPollInterval = 16 * time.Millisecond

// stream is the part of *slippstream.Client the commands use.
type stream interface {
	Dispatch(polling bool, timeout time.Duration) (*slippstream.Message, error)
	Running() bool
	SessionID() string
	Config() slippstream.Config
}

func connectCmd(opts *globalOptions) *cobra.Command {
	var (
		count int
		poll  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to the console and print stream messages",
		Long: `Connect performs the SlippiComm handshake and prints every message
the console sends until the stream ends, --count messages have been
printed, or the command is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := slog.Default()
			metrics, _, err := newMetrics(ctx, opts.metricsAddr, logger)
			if err != nil {
				return err
			}

			client := slippstream.NewClient(p.ClientConfig(),
				slippstream.WithLogger(logger.With("component", "slippstream")),
				slippstream.WithMetrics(metrics))
			if !client.Connect(ctx) {
				return client.Err()
			}
			defer client.Shutdown()

			return streamMessages(ctx, client, cmd.OutOrStdout(), count, poll)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many messages (0 for no limit)")
	cmd.Flags().DurationVar(&poll, "poll", defaultPollInterval, "how long each poll waits for a message")

	return cmd
}

// streamMessages prints messages from s until the stream ends, limit
// messages have been printed, or ctx is done. A clean end of stream is not
// an error.
func streamMessages(ctx context.Context, s stream, w io.Writer, limit int, poll time.Duration) error {
	printed := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		msg, err := s.Dispatch(true, poll)
		var envErr *slippstream.EnvelopeError
		switch {
		case slippstream.IsDisconnected(err):
			fmt.Fprintln(w, "stream ended")
			return nil
		case errors.As(err, &envErr):
			slog.Warn("skipping malformed message", "error", err)
			continue
		case err != nil:
			return err
		case msg == nil:
			continue
		}

		fmt.Fprintln(w, msg)
		printed++
		if limit > 0 && printed >= limit {
			return nil
		}
	}
}
