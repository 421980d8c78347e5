// Package train implements backpropagation for the evaluator's MLP:
// a single SGD step per (board, target) sample, with 180-degree
// rotation augmentation and a late-game training cutoff.
package train

import (
	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
)

// Trainer holds the hyperparameters for repeated Step calls against a
// shared *eval.Network.
type Trainer struct {
	// Eta is the learning rate.
	Eta float32
	// Mid suppresses training on positions with more than 64-Mid
	// stones already placed, to avoid late-game noise. Zero disables
	// the cutoff.
	Mid int
}

// Step performs one SGD update of n toward target for board b, then
// repeats it for the 180-rotated board (same target: rotation does
// not change teban or the fixed-stone counts). Positions beyond the
// Mid cutoff are skipped entirely (for both the board and its
// rotation) and reported as skipped.
func (tr *Trainer) Step(n *eval.Network, b board.Board, target float32) (skipped bool) {
	if tr.Mid > 0 && 64-b.Blanks() > 64-tr.Mid {
		return true
	}
	tr.backward(n, b, target)
	tr.backward(n, b.Rotate180(), target)
	return false
}

// backward runs one forward pass of b and applies the gradient
// descent update derived in weight.rs's train/backwardv3: the output
// layer first, then each hidden unit's input-side weights.
func (tr *Trainer) backward(n *eval.Network, b board.Board, target float32) {
	trace := eval.ForwardTrace(n, b)
	diff := trace.Y - target
	deta := diff * tr.Eta

	w := n.Weight[:]
	wh := eval.OutputWeights(w)
	for i := range wh {
		wh[i] -= trace.A[i] * deta
	}
	*eval.OutputBias(w) -= deta

	var dhid [eval.NHidden]float32
	for i := range dhid {
		dhid[i] = wh[i] * diff * eval.ActivationDerivative(trace.Z[i], trace.A[i])
	}

	teban := trace.Features.Teban
	for i, dh := range dhid {
		heta := dh * tr.Eta
		row := eval.CellWeights(w, i)
		for idx, c := range trace.Features.Cells {
			row[idx] -= c * heta
		}
		*eval.TebanWeight(w, i) -= teban * heta
		fb, fw := eval.FixedWeights(w, i)
		*fb -= trace.Features.FixedBlack * heta
		*fw -= trace.Features.FixedWhite * heta
		*eval.HiddenBias(w, i) -= heta
	}
}
