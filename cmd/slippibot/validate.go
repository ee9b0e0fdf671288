package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vladfi1/libmelee/menu"
)

func validateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a profile and show what each bot port will pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			bot, err := p.Target()
			if err != nil {
				return err
			}
			if _, err := menu.NewNavigator(bot, menu.WithLogger(slog.Default())); err != nil {
				return err
			}

			fmt.Fprintf(out, "Profile %s is valid.\n", opts.profilePath)
			fmt.Fprintf(out, "Console:  %s\n", p.ClientConfig().Endpoint())
			if p.Dolphin.Path != "" {
				fmt.Fprintf(out, "Dolphin:  %s\n", p.Dolphin.Path)
			}
			printTarget(out, "bot", p.Bot.Port, bot)

			opponent, ok, err := p.OpponentTarget()
			if err != nil {
				return err
			}
			if ok {
				if _, err := menu.NewNavigator(opponent, menu.WithLogger(slog.Default())); err != nil {
					return err
				}
				printTarget(out, "opponent", p.Opponent.Port, opponent)
			}
			return nil
		},
	}
}

// printTarget writes a one-line summary of a port's menu target.
func printTarget(w io.Writer, role string, port int, t menu.Target) {
	mode := "versus"
	switch {
	case t.Online():
		mode = "direct " + t.ConnectCode
	case t.CPULevel > 0:
		mode = fmt.Sprintf("cpu level %d", t.CPULevel)
	}
	fmt.Fprintf(w, "%-9s port %d: %s (costume %d) on %s, %s\n",
		role, port, t.Character, t.Costume, t.Stage, mode)
}
