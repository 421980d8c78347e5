// Package search implements negamax alpha-beta search over an
// arena-allocated tree, with shallow move ordering, endgame depth
// extension, and principal-variation reconstruction.
package search

import "github.com/o-jill/ruversi-go/internal/board"

// noChild marks a Node field that does not reference another node.
const noChild = -1

// Node is one arena-owned search-tree node: the move that reached it,
// depth remaining below it, the side to move there, its resolved
// score, a visited-node counter, its children, and its best child.
// Children are referenced by index into the owning Arena, never by
// pointer, so the whole tree can be freed in bulk when the Arena
// itself is discarded.
type Node struct {
	Move     board.Move
	Depth    int
	Teban    board.Side
	Score    float32
	Kyokumen uint64

	children  []int
	BestChild int
	BestScore float32
}

// Arena is a bump allocator for one search call's Node tree. It owns
// every node it hands out; indices into it are valid only for the
// lifetime of the search that created it.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena with room for an estimated number of
// nodes preallocated, to cut down on reallocation during a search.
func NewArena(estimate int) *Arena {
	return &Arena{nodes: make([]Node, 0, estimate)}
}

// Alloc reserves a new node for move m at the given depth/side, and
// returns its index.
func (a *Arena) Alloc(m board.Move, depth int, teban board.Side) int {
	a.nodes = append(a.nodes, Node{
		Move:      m,
		Depth:     depth,
		Teban:     teban,
		BestChild: noChild,
	})
	return len(a.nodes) - 1
}

// At returns a pointer to the node at index i, which may only be
// called while the Arena is live.
func (a *Arena) At(i int) *Node {
	return &a.nodes[i]
}

// AddChild records that child is one of parent's children.
func (a *Arena) AddChild(parent, child int) {
	a.nodes[parent].children = append(a.nodes[parent].children, child)
}

// Children returns parent's child indices in generation order.
func (a *Arena) Children(parent int) []int {
	return a.nodes[parent].children
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// PV walks root's best-child chain until it becomes invalid,
// collecting the moves that reached each node along the way.
func (a *Arena) PV(root int) []board.Move {
	var pv []board.Move
	i := root
	for {
		n := a.At(i)
		if n.BestChild == noChild {
			break
		}
		child := a.At(n.BestChild)
		pv = append(pv, child.Move)
		i = n.BestChild
	}
	return pv
}
