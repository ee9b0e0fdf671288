package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vladfi1/libmelee/profile"
	"github.com/vladfi1/libmelee/slippstream"
)

const consoleHelp = `Commands:
  .status          session, endpoint and message counts
  .poll [timeout]  wait up to timeout (default 16ms) for one message
  .next [n]        block for the next n messages (default 1)
  .stats           stream metrics
  .profile         what the bot ports are configured to pick
  .help            this help
  .quit            disconnect and exit
`

// lineReader is the part of *LineEditor the console needs.
type lineReader interface {
	GetLine(prompt string) (string, error)
}

func consoleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive stream console",
		Long: `Console connects to the stream and reads dot-commands, one per line.
Piped input is read line by line without line editing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := slog.Default()
			metrics, reg, err := newMetrics(ctx, opts.metricsAddr, logger)
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

			out := cmd.OutOrStdout()
			editor := NewLineEditor(os.Stdin, out)
			defer editor.Close()

			if editor.IsInteractive() {
				fmt.Fprintf(out, "Connected to %s (session %s). Type .help for commands.\n",
					client.Config().Endpoint(), client.SessionID())
			}

			c := &console{stream: client, profile: p, stats: reg, out: out}
			return c.run(editor)
		},
	}
}

// console executes dot-commands against a connected stream.
type console struct {
	stream  stream
	profile *profile.Profile
	stats   prometheus.Gatherer
	out     io.Writer

	received     int
	disconnected bool
	last         *slippstream.Message
}

func (c *console) prompt() string {
	if c.disconnected {
		return "slippi (ended)> "
	}
	return "slippi> "
}

// run reads commands until .quit or the end of input.
func (c *console) run(in lineReader) error {
	for {
		line, err := in.GetLine(c.prompt())
		if err == io.EOF {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		quit, err := c.execute(line)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %s\n", err)
		}
		if quit {
			return nil
		}
	}
}

// execute runs one command line and reports whether the console should
// exit.
func (c *console) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case ".quit", ".exit":
		return true, nil
	case ".help":
		fmt.Fprint(c.out, consoleHelp)
	case ".status":
		c.printStatus()
	case ".poll":
		timeout := defaultPollInterval
		if len(args) > 0 {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return false, fmt.Errorf("invalid timeout %q: %w", args[0], err)
			}
			timeout = d
		}
		return false, c.receive(true, timeout, 1)
	case ".next":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return false, fmt.Errorf("invalid count %q", args[0])
			}
			n = v
		}
		return false, c.receive(false, 0, n)
	case ".stats":
		return false, printStats(c.out, c.stats)
	case ".profile":
		return false, c.printProfile()
	default:
		return false, fmt.Errorf("unknown command %s (try .help)", command)
	}
	return false, nil
}

// receive dispatches up to n messages and prints them. A poll that times
// out prints a notice instead.
func (c *console) receive(polling bool, timeout time.Duration, n int) error {
	for i := 0; i < n; i++ {
		msg, err := c.stream.Dispatch(polling, timeout)
		if slippstream.IsDisconnected(err) {
			c.disconnected = true
			fmt.Fprintln(c.out, "stream ended")
			return nil
		}
		if err != nil {
			return err
		}
		if msg == nil {
			fmt.Fprintln(c.out, "no message")
			return nil
		}
		c.received++
		c.last = msg
		fmt.Fprintln(c.out, msg)
	}
	return nil
}

func (c *console) printStatus() {
	cfg := c.stream.Config()
	state := "running"
	if !c.stream.Running() {
		state = "stopped"
	}
	fmt.Fprintf(c.out, "Endpoint: %s\n", cfg.Endpoint())
	fmt.Fprintf(c.out, "Session:  %s\n", c.stream.SessionID())
	fmt.Fprintf(c.out, "State:    %s\n", state)
	fmt.Fprintf(c.out, "Received: %d\n", c.received)
	if c.last != nil {
		fmt.Fprintf(c.out, "Last:     %s\n", c.last)
	}
}

func (c *console) printProfile() error {
	if c.profile == nil {
		return fmt.Errorf("no profile loaded")
	}
	bot, err := c.profile.Target()
	if err != nil {
		return err
	}
	printTarget(c.out, "bot", c.profile.Bot.Port, bot)

	opponent, ok, err := c.profile.OpponentTarget()
	if err != nil {
		return err
	}
	if ok {
		printTarget(c.out, "opponent", c.profile.Opponent.Port, opponent)
	}
	return nil
}
