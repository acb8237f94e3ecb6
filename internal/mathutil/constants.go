package mathutil

import "math"

// Epsilon is the tolerance used by ApproxEqual.
const Epsilon = 1e-9

// Inf is the saturating stand-in for a division by zero in grid traversal.
var Inf = math.Inf(1)

// SafeInv returns |1/x|, or +Inf when x is exactly zero.
func SafeInv(x float64) float64 {
	if x == 0 {
		return Inf
	}
	return math.Abs(1 / x)
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
