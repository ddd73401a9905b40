// Package render prints the per-interface throughput table.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"ifrate/internal/domain"
)

const (
	valueWidth   = 30
	minNameWidth = 10
)

// Options control row ordering and zero-field suppression.
type Options struct {
	// HideZeroValues prints a blank field instead of a scaled zero.
	HideZeroValues bool

	// SortByMagnitude orders rows by rx+tx descending instead of by name.
	SortByMagnitude bool
}

// Table writes one aligned row per device that has a delta. The ordering
// snapshot supplies the full device set: its longest name sets the name
// column width even for devices without a delta, but such devices
// produce no row. With intervalSeconds zero (first run) the computed
// rates are non-finite and printed as-is.
func Table(w io.Writer, deltas domain.DeviceRates, ordering *domain.Snapshot, intervalSeconds float64, opts Options) error {
	nameWidth := minNameWidth
	names := make([]string, 0, len(ordering.Devices))
	for name := range ordering.Devices {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if opts.SortByMagnitude {
		// Stable, so equal magnitudes keep their alphabetical order.
		sort.SliceStable(names, func(i, j int) bool {
			a, b := deltas[names[i]], deltas[names[j]]
			return a.RX+a.TX > b.RX+b.TX
		})
	}

	_, err := fmt.Fprintf(w, "%s %s %s\n",
		rightAlign("Interface", nameWidth), center("Receive", valueWidth), center("Transmit", valueWidth))
	if err != nil {
		return err
	}

	for _, name := range names {
		stat, ok := deltas[name]
		if !ok {
			// No baseline for this device, no row.
			continue
		}
		_, err := fmt.Fprintf(w, "%s %s %s\n",
			rightAlign(name, nameWidth),
			rightAlign(cell(stat.RX, intervalSeconds, opts.HideZeroValues), valueWidth),
			rightAlign(cell(stat.TX, intervalSeconds, opts.HideZeroValues), valueWidth))
		if err != nil {
			return err
		}
	}
	return nil
}

func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// cell renders one counter as "X.XX KiB/s (Y.YY Kbit/s)", or blank when
// zero values are hidden.
func cell(count uint64, seconds float64, hideZero bool) string {
	if hideZero && count == 0 {
		return ""
	}
	rate := float64(count) / seconds
	bytesVal, bytesPrefix := Scale(rate, binaryPrefixes, binaryFactor)
	bitsVal, bitsPrefix := Scale(rate*8, decimalPrefixes, decimalFactor)
	return fmt.Sprintf("%.2f %sB/s (%.2f %sbit/s)", bytesVal, bytesPrefix, bitsVal, bitsPrefix)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
