//go:build arm64

package eval

import "github.com/o-jill/ruversi-go/internal/board"

// ForwardVector4 mirrors the NEON-width evaluator path: identical in
// shape to the amd64 SSE path (4-wide lanes), standing in for
// vaddq_f32/vmulq_f32 on AArch64.
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
			for lane := 0; lane < 4; lane++ {
				row := w[offCell+(i+lane)*NCells : offCell+(i+lane+1)*NCells]
				hid[lane] += row[idx+0]*cells[idx+0] + row[idx+1]*cells[idx+1] +
					row[idx+2]*cells[idx+2] + row[idx+3]*cells[idx+3]
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
