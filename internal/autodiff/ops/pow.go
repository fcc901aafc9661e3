package ops

import "math"

// powRule: output = a ** b.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a)
//
// The forward pass accepts negative bases when the exponent is integral,
// but d/db needs ln(a) and fails with ErrDomain for any a <= 0. A graph
// containing (-2)**3 therefore evaluates fine and only fails on backward.
var powRule = Rule{
	PartialA: func(a, b float64) (float64, error) {
		p, err := pow(a, b-1)
		if err != nil {
			return 0, err
		}
		return b * p, nil
	},
	PartialB: func(a, b float64) (float64, error) {
		if a <= 0 {
			return 0, ErrDomain
		}
		return math.Pow(a, b) * math.Log(a), nil
	},
	Forward: pow,
}

// pow is math.Pow restricted to real results.
func pow(a, b float64) (float64, error) {
	switch {
	case a == 0 && b < 0:
		return 0, ErrDivisionByZero
	case a < 0 && !isIntegral(b):
		// Real power of a negative base is only defined for integral exponents.
		return 0, ErrDomain
	}
	return math.Pow(a, b), nil
}

func isIntegral(x float64) bool {
	return x == math.Trunc(x) && !math.IsInf(x, 0)
}
