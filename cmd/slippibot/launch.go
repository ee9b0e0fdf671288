package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vladfi1/libmelee/profile"
	"github.com/vladfi1/libmelee/slippstream"
)

const (
	// streamWaitTimeout is how long the emulator gets to open the stream
	// port after it is started.
	streamWaitTimeout = 30 * time.Second

	// streamProbeInterval is the pause between connection probes.
	streamProbeInterval = 500 * time.Millisecond
)

// dolphinExecutableNames are tried in order on PATH and in the common
// install locations.
var dolphinExecutableNames = []string{
	"Slippi_Online-x86_64.AppImage",
	"slippi-netplay",
	"dolphin-emu",
}

var errStreamTimeout = errors.New("timed out waiting for the stream")

func launchCmd(opts *globalOptions) *cobra.Command {
	var (
		detach  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Start Slippi Dolphin and wait for its stream",
		Long: `Launch starts the emulator named by the profile (or the first one found
on PATH and in the usual install locations), booting the configured ISO,
and waits until the SlippiComm stream accepts a handshake.

Without --detach it then waits for the emulator to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := slog.Default()
			proc, err := launchDolphin(p.Dolphin)
			if err != nil {
				return err
			}
			logger.Info("dolphin started", "pid", proc.Process.Pid, "path", proc.Path)

			cfg := p.ClientConfig()
			cfg.ConnectAttempts = 1
			probe := func(ctx context.Context) error {
				client := slippstream.NewClient(cfg, slippstream.WithLogger(logger.With("component", "slippstream")))
				defer client.Shutdown()
				if !client.Connect(ctx) {
					return client.Err()
				}
				return nil
			}
			if err := waitForStream(ctx, probe, timeout, streamProbeInterval); err != nil {
				return fmt.Errorf("dolphin started (PID: %d) but %s did not answer: %w",
					proc.Process.Pid, cfg.Endpoint(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stream ready at %s\n", cfg.Endpoint())

			if detach {
				return proc.Process.Release()
			}
			return proc.Wait()
		},
	}

	cmd.Flags().BoolVarP(&detach, "detach", "d", false, "leave the emulator running and exit once the stream is up")
	cmd.Flags().DurationVar(&timeout, "timeout", streamWaitTimeout, "how long to wait for the stream")

	return cmd
}

// launchDolphin starts the emulator with the profile's ISO and user
// directory. Its output is discarded.
func launchDolphin(d profile.Dolphin) (*exec.Cmd, error) {
	exePath, err := findDolphinExecutable(d.Path)
	if err != nil {
		return nil, fmt.Errorf("could not find dolphin: %w", err)
	}

	cmd := exec.Command(exePath, dolphinArgs(d)...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", exePath, err)
	}
	return cmd, nil
}

// dolphinArgs builds the emulator command line.
func dolphinArgs(d profile.Dolphin) []string {
	var args []string
	if d.ISO != "" {
		args = append(args, "-e", d.ISO)
	}
	if d.UserDir != "" {
		args = append(args, "-u", d.UserDir)
	}
	return append(args, d.Args...)
}

// findDolphinExecutable resolves the emulator binary. A configured path
// must exist; otherwise the directory of this binary, PATH and the common
// install locations are searched.
func findDolphinExecutable(configured string) (string, error) {
	if configured != "" {
		if isExecutable(configured) {
			return configured, nil
		}
		return "", fmt.Errorf("%s is not an executable file", configured)
	}

	if selfPath, err := os.Executable(); err == nil {
		for _, name := range dolphinExecutableNames {
			candidate := filepath.Join(filepath.Dir(selfPath), name)
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}

	for _, name := range dolphinExecutableNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	home := homeDir()
	commonPaths := []string{
		filepath.Join(home, ".config", "Slippi Launcher", "netplay"),
		filepath.Join(home, ".local", "bin"),
		"/usr/local/bin",
		"/opt/slippi",
	}
	for _, dir := range commonPaths {
		for _, name := range dolphinExecutableNames {
			candidate := filepath.Join(dir, name)
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("none of %v found in PATH or common locations", dolphinExecutableNames)
}

// waitForStream calls probe until it succeeds, ctx is done or timeout
// passes, sleeping interval between failed probes.
func waitForStream(ctx context.Context, probe func(context.Context) error, timeout, interval time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		err := probe(ctx)
		if err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w after %s: %v", errStreamTimeout, timeout, err)
			}
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// isExecutable reports whether path is a regular file with an execute bit.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&0111 != 0
}
