//go:build softsign

package eval

// activateVector mirrors activate exactly: soft-sign has no
// transcendental term, so the vectorized and scalar paths compute the
// identical expression.
func activateVector(x float32) float32 {
	return activate(x)
}
