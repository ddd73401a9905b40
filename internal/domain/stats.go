package domain

import "time"

// DeviceStatistics holds the cumulative byte counters the kernel reports
// for one interface since it came up. The counters only ever grow and
// wrap around on overflow.
type DeviceStatistics struct {
	RX uint64 `json:"rx"`
	TX uint64 `json:"tx"`
}

// DeviceRates maps an interface name to its counters. Iteration order is
// undefined; consumers that need an order impose their own.
type DeviceRates map[string]DeviceStatistics

// Snapshot is every device's counters as observed at one instant.
type Snapshot struct {
	Timestamp time.Time   `json:"timestamp"`
	Devices   DeviceRates `json:"devices"`
}

// Subtract returns a minus b, componentwise. The arithmetic wraps when a
// counter went backwards (interface reset); callers accept that.
func Subtract(a, b DeviceStatistics) DeviceStatistics {
	return DeviceStatistics{RX: a.RX - b.RX, TX: a.TX - b.TX}
}
