package procnet

import (
	"bufio"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/benbjohnson/clock"

	"ifrate/internal/domain"
)

// DefaultPath is where the kernel exposes per-interface counters.
// See man 5 proc.
const DefaultPath = "/proc/net/dev"

const (
	headerLines = 2

	// Column layout of the table: interface name, then 16 numeric
	// columns starting with rx bytes; tx bytes is the 9th numeric one.
	rxField = 1
	txField = 9
)

// Reader produces snapshots from the kernel statistics table.
type Reader struct {
	path   string
	clock  clock.Clock
	logger *slog.Logger
}

func NewReader(path string, clk clock.Clock, logger *slog.Logger) *Reader {
	return &Reader{path: path, clock: clk, logger: logger}
}

// Read parses the whole statistics table into a fresh snapshot stamped
// with the current time. hideZero drops devices whose rx and tx counters
// are both zero. A single structurally bad line fails the whole read;
// lines that could not be read as text are skipped instead.
func (r *Reader) Read(hideZero bool) (*domain.Snapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, domain.SourceUnavailableError{Path: r.path, Err: err}
	}
	defer f.Close()

	snap := &domain.Snapshot{
		Timestamp: r.clock.Now().UTC(),
		Devices:   domain.DeviceRates{},
	}

	scanner := bufio.NewScanner(f)
	for i := 0; i < headerLines && scanner.Scan(); i++ {
	}

	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			r.logger.Debug("skipping undecodable line", "source", r.path)
			continue
		}

		name, stat, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		if hideZero && stat.RX == 0 && stat.TX == 0 {
			r.logger.Debug("hiding idle interface", "device", name)
			continue
		}
		snap.Devices[name] = stat
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.SourceUnavailableError{Path: r.path, Err: err}
	}

	return snap, nil
}

func parseLine(line string) (string, domain.DeviceStatistics, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", domain.DeviceStatistics{}, domain.MalformedLineError{Field: "interface name", Line: line}
	}
	// Trim every trailing colon, not just one character.
	name := strings.TrimRight(fields[0], ":")

	if len(fields) <= rxField {
		return "", domain.DeviceStatistics{}, domain.MalformedLineError{Field: "rx bytes", Line: line}
	}
	rx, err := strconv.ParseUint(fields[rxField], 10, 64)
	if err != nil {
		return "", domain.DeviceStatistics{}, domain.MalformedLineError{Field: "rx bytes", Line: line, Err: err}
	}

	if len(fields) <= txField {
		return "", domain.DeviceStatistics{}, domain.MalformedLineError{Field: "tx bytes", Line: line}
	}
	tx, err := strconv.ParseUint(fields[txField], 10, 64)
	if err != nil {
		return "", domain.DeviceStatistics{}, domain.MalformedLineError{Field: "tx bytes", Line: line, Err: err}
	}

	return name, domain.DeviceStatistics{RX: rx, TX: tx}, nil
}
