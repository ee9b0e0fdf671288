// Command slippibot connects to a Slippi console and drives bot ports
// through the game's menus.
//
// Usage:
//
//	slippibot validate --profile bot.yaml
//	slippibot launch --profile bot.yaml
//	slippibot connect --profile bot.yaml --count 100
//	slippibot console --profile bot.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vladfi1/libmelee/profile"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	profilePath string
	envFiles    []string
	verbose     bool
	metricsAddr string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "slippibot",
		Short: "Stream game state from Slippi and drive bots through the menus",
		Long: `slippibot talks to Slippi Dolphin (or a Slippi Nintendont console)
over the SlippiComm stream.

A profile (YAML) names the console to connect to, how to launch the
emulator, and what each bot port should pick. SLIPPI_ADDRESS, SLIPPI_PORT,
DOLPHIN_PATH and MELEE_ISO override the profile, from the environment or
from .env files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.verbose))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.profilePath, "profile", "p", "slippibot.yaml", "bot profile")
	flags.StringSliceVar(&opts.envFiles, "env", []string{".env"}, "environment files overriding the profile")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	cmd.AddCommand(
		connectCmd(opts),
		consoleCmd(opts),
		validateCmd(opts),
		launchCmd(opts),
		versionCmd(),
	)
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadProfile(opts *globalOptions) (*profile.Profile, error) {
	p, err := profile.Load(opts.profilePath, opts.envFiles...)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", opts.profilePath, err)
	}
	return p, nil
}
