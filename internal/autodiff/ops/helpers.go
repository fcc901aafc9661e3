package ops

import "strconv"

// constant returns a partial that ignores its operands.
func constant(v float64) func(a, b float64) (float64, error) {
	return func(_, _ float64) (float64, error) {
		return v, nil
	}
}

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
