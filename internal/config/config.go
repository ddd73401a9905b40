package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ifrate/internal/procnet"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Config holds one invocation's settings, from CLI flags layered over
// IFRATE_* environment variables.
type Config struct {
	// HistoryFile is the path of the persisted snapshot used as the
	// baseline for rate computation. Required.
	HistoryFile string

	// SourcePath is the kernel statistics table to read.
	SourcePath string

	// HideZeroInterfaces drops devices whose counters are all zero from
	// the live read.
	HideZeroInterfaces bool

	// HideZeroValues blanks individual zero fields in the output table.
	HideZeroValues bool

	// SortByMagnitude orders rows by rx+tx descending instead of by name.
	SortByMagnitude bool

	// Verbose enables debug logging.
	Verbose bool

	// ShowVersion prints build information instead of running.
	ShowVersion bool
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SourcePath: procnet.DefaultPath,
	}
}

// Load builds the configuration from args (typically os.Args[1:]),
// with environment variables filling anything not set on the command
// line and defaults under both.
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("IFRATE_SOURCE"); v != "" {
		cfg.SourcePath = v
	}
	if v := os.Getenv("IFRATE_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}
	if os.Getenv("IFRATE_DEBUG") == "true" {
		cfg.Verbose = true
	}

	fs := flag.NewFlagSet("ifrate", flag.ContinueOnError)
	fs.StringVar(&cfg.HistoryFile, "history-file", cfg.HistoryFile, "path of the snapshot history file (required)")
	fs.StringVar(&cfg.HistoryFile, "f", cfg.HistoryFile, "shorthand for -history-file")
	fs.StringVar(&cfg.SourcePath, "source", cfg.SourcePath, "statistics table to read")
	fs.BoolVar(&cfg.HideZeroInterfaces, "hide-zero-interfaces", false, "drop interfaces whose counters are all zero")
	fs.BoolVar(&cfg.HideZeroValues, "hide-zero-values", false, "print blank fields instead of zero rates")
	fs.BoolVar(&cfg.SortByMagnitude, "sort-by-magnitude", false, "order rows by rx+tx descending instead of by name")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if !cfg.ShowVersion && cfg.HistoryFile == "" {
		return nil, fmt.Errorf("-history-file is required")
	}
	return cfg, nil
}

// NewLogger creates the diagnostics logger. The report table goes to
// stdout; diagnostics go to w (stderr in the binary) so the two streams
// stay separable.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
