package main

import (
	"fmt"
	"strings"

	"devcon/internal/builtin"
	"devcon/internal/console"
	"devcon/internal/history"

	"github.com/spf13/cobra"
)

// stdoutPrinter writes builtin output straight to stdout; markdown is left
// unrendered outside the TUI.
type stdoutPrinter struct{}

func (stdoutPrinter) Printf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

func (stdoutPrinter) Markdown(md string) {
	fmt.Print(md)
}

// runExec dispatches a single line and maps the diagnostic to the exit code.
func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sh := console.New()
	opts := builtin.Options{}

	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()
		opts.History = func(n int) ([]string, error) {
			entries, err := store.Recent(n)
			if err != nil {
				return nil, err
			}
			lines := make([]string, len(entries))
			for i, e := range entries {
				lines[i] = e.Line
			}
			return lines, nil
		}
	}
	builtin.RegisterAll(sh, stdoutPrinter{}, opts)

	sh.RunLine(strings.Join(args, " "))
	if sh.Failed() {
		return fmt.Errorf("%s", sh.LastError())
	}
	return nil
}
