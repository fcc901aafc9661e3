package ops

// mulRule: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
var mulRule = Rule{
	Forward: func(a, b float64) (float64, error) {
		return a * b, nil
	},
	PartialA: func(_, b float64) (float64, error) {
		return b, nil
	},
	PartialB: func(a, _ float64) (float64, error) {
		return a, nil
	},
}
