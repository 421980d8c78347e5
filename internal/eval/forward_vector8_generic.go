//go:build !amd64

package eval

import "github.com/o-jill/ruversi-go/internal/board"

// ForwardVector8 falls back to the 4-wide path outside x86-64: AVX2
// is an x86 extension, so non-amd64 builds have nothing wider to
// offer than ForwardVector4.
func ForwardVector8(n *Network, b board.Board) float32 {
	return ForwardVector4(n, b)
}
