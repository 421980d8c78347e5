//go:build amd64

package eval

import "github.com/o-jill/ruversi-go/internal/board"

// ForwardVector4 mirrors the SSE/NEON-width evaluator path: hidden
// units are processed four at a time, and the 64 cell inputs for each
// are summed in 4-wide chunks. On real x86-64 this is where
// _mm_load_ps/_mm_mul_ps/_mm_add_ps would appear; here the four lanes
// are carried explicitly as separate accumulators so the unrolling
// (and its rounding behavior) is preserved without assembly.
func ForwardVector4(n *Network, b board.Board) float32 {
	cells := extractLanes(b)
	teban := float32(b.Teban)
	fb, fw := b.FixedStones()
	fblack, fwhite := float32(fb), float32(fw)

	w := &n.Weight
	sum := w[offOut]
	for i := 0; i < NHidden; i += 4 {
		var hid [4]float32
		for lane := 0; lane < 4; lane++ {
			hid[lane] = w[offBias+i+lane]
		}
		for idx := 0; idx < NCells; idx += 4 {
			var a0, a1, a2, a3 [4]float32
			for lane := 0; lane < 4; lane++ {
				row := w[offCell+(i+lane)*NCells : offCell+(i+lane+1)*NCells]
				a0[lane] = row[idx+0] * cells[idx+0]
				a1[lane] = row[idx+1] * cells[idx+1]
				a2[lane] = row[idx+2] * cells[idx+2]
				a3[lane] = row[idx+3] * cells[idx+3]
			}
			for lane := 0; lane < 4; lane++ {
				hid[lane] += (a0[lane] + a1[lane]) + (a2[lane] + a3[lane])
			}
		}
		for lane := 0; lane < 4; lane++ {
			hid[lane] += teban * w[offTeban+i+lane]
			hid[lane] += fblack * w[offFixed+i+lane]
			hid[lane] += fwhite * w[offFixed+NHidden+i+lane]
			sum += w[offHid+i+lane] * activateVector(hid[lane])
		}
	}
	return sum
}
