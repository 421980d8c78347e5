package eval

import "github.com/o-jill/ruversi-go/internal/board"

// Trace holds a forward pass's intermediate values, as the trainer
// needs them for backpropagation: the extracted input features, each
// hidden unit's pre- and post-activation values, and the output.
type Trace struct {
	Features Features
	Z        [NHidden]float32 // pre-activation
	A        [NHidden]float32 // post-activation
	Y        float32
}

// ForwardTrace runs the scalar forward pass, keeping every
// intermediate value the trainer needs.
func ForwardTrace(n *Network, b board.Board) Trace {
	f := Extract(b)
	w := &n.Weight
	var tr Trace
	tr.Features = f

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

		a := activate(hid)
		tr.Z[i] = hid
		tr.A[i] = a
		sum += w[offHid+i] * a
	}
	tr.Y = sum
	return tr
}
