// Package rate turns two snapshots into per-device counter deltas and
// the wall-clock interval they span.
package rate

import "ifrate/internal/domain"

// Diff emits cur minus prev for every device present in both sets. A
// device missing from prev has no baseline and is dropped; a device
// missing from cur is gone and is dropped too. Subtraction wraps if a
// counter went backwards.
func Diff(cur, prev domain.DeviceRates) domain.DeviceRates {
	out := make(domain.DeviceRates, len(cur))
	for name, stat := range cur {
		base, ok := prev[name]
		if !ok {
			continue
		}
		out[name] = domain.Subtract(stat, base)
	}
	return out
}

// Interval returns the elapsed seconds between prev and cur. A negative
// interval means the clock went backwards or the stored timestamp is
// bogus; that is fatal, never clamped to zero.
func Interval(cur, prev *domain.Snapshot) (float64, error) {
	d := cur.Timestamp.Sub(prev.Timestamp)
	if d < 0 {
		return 0, domain.NegativeIntervalError{Interval: d}
	}
	return d.Seconds(), nil
}
