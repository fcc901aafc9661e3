package ops

// addRule: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
var addRule = Rule{
	Forward: func(a, b float64) (float64, error) {
		return a + b, nil
	},
	PartialA: constant(1),
	PartialB: constant(1),
}
