package render

import "math"

// Prefix ladders used for every displayed quantity: byte rates scale in
// 1024 steps, bit rates in 1000 steps.
var (
	binaryPrefixes  = []string{"Ki", "Mi", "Gi", "Ti"}
	decimalPrefixes = []string{"K", "M", "G", "T"}
)

const (
	binaryFactor  = 1024
	decimalFactor = 1000
)

// Scale divides value down the prefix ladder until it no longer exceeds
// factor or the ladder runs out, returning the scaled value and the
// prefix it stopped at. Non-finite values pass through unscaled with an
// empty prefix.
func Scale(value float64, prefixes []string, factor float64) (float64, string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value, ""
	}
	prefix := ""
	for _, p := range prefixes {
		if value <= factor {
			break
		}
		value /= factor
		prefix = p
	}
	return value, prefix
}
