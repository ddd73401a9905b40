package main

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"

	"ifrate/internal/app"
	"ifrate/internal/config"
	"ifrate/internal/procnet"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Printf("ifrate %s (built %s)\n", config.Version, config.BuildTime)
		return
	}

	logger := config.NewLogger(cfg, os.Stderr)
	reader := procnet.NewReader(cfg.SourcePath, clock.New(), logger)

	if err := app.New(cfg, logger, reader, os.Stdout).Run(); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
