// Package app wires the snapshot pipeline: read live counters, diff
// against the stored baseline, persist the fresh snapshot, render the
// table. Single-shot; the tool is meant to be re-invoked by a scheduler
// rather than to loop or retry.
package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"ifrate/internal/config"
	"ifrate/internal/procnet"
	"ifrate/internal/rate"
	"ifrate/internal/render"
	"ifrate/internal/store"
)

type App struct {
	cfg    *config.Config
	logger *slog.Logger
	reader *procnet.Reader
	out    io.Writer
}

func New(cfg *config.Config, logger *slog.Logger, reader *procnet.Reader, out io.Writer) *App {
	return &App{cfg: cfg, logger: logger, reader: reader, out: out}
}

// Run executes one reporting pass. Any failure propagates before the
// table is written; there is no partial or degraded output.
func (a *App) Run() error {
	a.logger.Debug("starting report run",
		"run_id", uuid.NewString(),
		"history_file", a.cfg.HistoryFile,
		"source", a.cfg.SourcePath,
	)

	if !store.Exists(a.cfg.HistoryFile) {
		return a.firstRun()
	}
	a.logger.Debug("history file exists", "path", a.cfg.HistoryFile)

	prev, err := store.Load(a.cfg.HistoryFile)
	if err != nil {
		return err
	}
	cur, err := a.reader.Read(a.cfg.HideZeroInterfaces)
	if err != nil {
		return err
	}

	deltas := rate.Diff(cur.Devices, prev.Devices)
	if err := store.Save(a.cfg.HistoryFile, cur); err != nil {
		return err
	}

	seconds, err := rate.Interval(cur, prev)
	if err != nil {
		return err
	}
	a.logger.Debug("computed interval", "seconds", seconds)

	return render.Table(a.out, deltas, cur, seconds, a.options())
}

// firstRun has no baseline to diff against: the fresh snapshot is
// persisted and all devices are reported over a zero interval, which
// renders as non-finite rates by design.
func (a *App) firstRun() error {
	a.logger.Debug("history file missing, first run", "path", a.cfg.HistoryFile)

	cur, err := a.reader.Read(a.cfg.HideZeroInterfaces)
	if err != nil {
		return err
	}
	if err := store.Save(a.cfg.HistoryFile, cur); err != nil {
		return err
	}
	return render.Table(a.out, cur.Devices, cur, 0, a.options())
}

func (a *App) options() render.Options {
	return render.Options{
		HideZeroValues:  a.cfg.HideZeroValues,
		SortByMagnitude: a.cfg.SortByMagnitude,
	}
}
