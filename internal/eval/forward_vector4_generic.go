//go:build !amd64 && !arm64

package eval

import "github.com/o-jill/ruversi-go/internal/board"

// ForwardVector4 is the portable fallback for architectures without a
// dedicated 4-wide path: functionally identical to the scalar
// forward pass (same exp, not the approximation), so it always agrees
// with Forward exactly.
func ForwardVector4(n *Network, b board.Board) float32 {
	return forwardFeatures(n, Extract(b))
}
