package eval

import "github.com/o-jill/ruversi-go/internal/board"

// Forward runs the reference scalar evaluation: the canonical
// implementation every vectorized path is cross-checked against.
func Forward(n *Network, b board.Board) float32 {
	f := Extract(b)
	return forwardFeatures(n, f)
}

func forwardFeatures(n *Network, f Features) float32 {
	w := &n.Weight
	sum := w[offOut]
	for i := 0; i < NHidden; i++ {
		hid := w[offBias+i]
		row := w[offCell+i*NCells : offCell+(i+1)*NCells]
		for idx, c := range f.Cells {
			hid += c * row[idx]
		}
		hid += f.Teban * w[offTeban+i]
		hid += f.FixedBlack * w[offFixed+i]
		hid += f.FixedWhite * w[offFixed+NHidden+i]
		sum += w[offHid+i] * activate(hid)
	}
	return sum
}
