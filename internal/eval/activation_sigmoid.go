//go:build !softsign

package eval

import "math"

// activate is the hidden-layer nonlinearity. The default build uses
// the logistic sigmoid; build with -tags softsign to switch to the
// soft-sign activation instead.
func activate(x float32) float32 {
	return float32(1.0 / (math.Exp(-float64(x)) + 1.0))
}
