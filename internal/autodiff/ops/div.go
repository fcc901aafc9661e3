package ops

// divRule: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// All three are undefined for b == 0 and return ErrDivisionByZero.
// IEEE infinities are never produced.
var divRule = Rule{
	Forward: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	},
	PartialA: func(_, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return 1 / b, nil
	},
	PartialB: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return -a / (b * b), nil
	},
}
