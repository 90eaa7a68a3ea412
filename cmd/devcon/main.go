// devcon is an embeddable developer console. Run without arguments for the
// interactive terminal UI; use "devcon exec" to run a single command line.
package main

import (
	"fmt"
	"os"

	"devcon/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgPath string
	verbose bool
)

// rootCmd launches the interactive console by default.
var rootCmd = &cobra.Command{
	Use:   "devcon",
	Short: "devcon - an embeddable developer console",
	Long: `devcon is a text-command console for interactive applications.

Typed lines are tokenized, resolved case-insensitively against the command
registry, validated against each command's declared arity, and dispatched
with lazily-typed arguments. Named variables backed by host storage can be
read and written with type-directed coercion.

Run without arguments to start the interactive console.`,
	// main prints RunE errors itself; without these cobra prints them a
	// second time, followed by the usage block.
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// execCmd runs one line non-interactively, for scripts and smoke tests.
var execCmd = &cobra.Command{
	Use:   "exec [line...]",
	Short: "Run a single console line and exit",
	Long: `Runs one command line against a console with the stock commands
registered, printing output to stdout. Exits non-zero when the dispatch
issues a diagnostic.

Example:
  devcon exec echo hello world`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

// loadConfig reads and validates the configured (or default) config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".devcon/devcon.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "force debug logging")

	rootCmd.AddCommand(execCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
