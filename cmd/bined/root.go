package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bined/internal/config"
	"github.com/joshuapare/bined/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string

	// cfg is loaded once before any command runs
	cfg = config.DefaultConfig()

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "bined [file]",
	Short: "Edit binary files of any size from a line-command prompt",
	Long: `bined is an interactive editor for binary files. Commands are read one per
line from the terminal (or a script) and operate on a cursor within the open
file: READ dumps bytes as hex, SEEK moves the cursor, WRITE overwrites or
combines bytes, and INSERT shifts the rest of the file forward without loading
it into memory.

Example:
  bined firmware.bin
  bined --create blank.bin
  bined --script patch.txt firmware.bin`,
	Version:           version,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(args)
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/bined/config.json)")
}

// setup loads the configuration and starts the logger.
func setup(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()

	var err error
	if configPath != "" {
		cfg, err = loader.LoadFile(configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return err
	}
	if noColor {
		cfg.Output.Color = false
	}

	closeFn, err := logger.Init(cfg.LoggerOptions())
	if err != nil {
		// Logging is optional; keep going without it.
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		return nil
	}
	closeLog = closeFn
	logger.Info("starting bined", "command", cmd.Name(), "args", args)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprint(os.Stderr, newStyles(cfg.Output.Color).err.Render("Error:")+" ")
	fmt.Fprintf(os.Stderr, format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
