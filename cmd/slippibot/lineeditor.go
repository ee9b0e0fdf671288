package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	historyFileName = ".slippibot_history"
	historySize     = 500
)

// LineEditor reads console commands. On a terminal it uses readline with
// persistent history; piped input (or running under Emacs) falls back to a
// plain scanner with the prompt printed by hand.
type LineEditor struct {
	interactive bool
	rl          *readline.Instance
	scanner     *bufio.Scanner
	out         io.Writer
}

// NewLineEditor picks the input mode for in. Prompts for piped input are
// written to out.
func NewLineEditor(in *os.File, out io.Writer) *LineEditor {
	interactive := term.IsTerminal(int(in.Fd())) &&
		os.Getenv("INSIDE_EMACS") == ""

	if !interactive {
		return &LineEditor{
			scanner: bufio.NewScanner(in),
			out:     out,
		}
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            filepath.Join(homeDir(), historyFileName),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
		Prompt:                 "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return &LineEditor{
			scanner: bufio.NewScanner(in),
			out:     out,
		}
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
		out:         out,
	}
}

// GetLine reads one line after showing prompt. Ctrl-D, Ctrl-C and the end
// of piped input all return io.EOF.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Fprint(le.out, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return le.scanner.Text(), nil
}

// Close saves history and releases the terminal. It is safe to call more
// than once.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether full line editing is active.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}

// homeDir returns the user's home directory, or "." if it cannot be found.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
