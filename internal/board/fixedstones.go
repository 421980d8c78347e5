package board

// corners lists the (x, y) coordinates of the board's four corners.
var corners = [4][2]int{{0, 0}, {NumCell - 1, 0}, {0, NumCell - 1}, {NumCell - 1, NumCell - 1}}

// edgeWalks gives, for each corner, the two outward unit steps along
// its edges.
var edgeWalks = [4][2][2]int{
	{{1, 0}, {0, 1}},   // from (0,0): along top edge, along left edge
	{{-1, 0}, {0, 1}},  // from (7,0): along top edge, along right edge
	{{1, 0}, {0, -1}},  // from (0,7): along bottom edge, along left edge
	{{-1, 0}, {0, -1}}, // from (7,7): along bottom edge, along right edge
}

// lOrientations enumerates the four corner directions an interior
// cell can derive fixedness from: its two cardinal neighbors in that
// direction plus their shared diagonal.
var lOrientations = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// FixedStones returns a lower bound on the number of black and white
// stones that can never be flipped for the rest of the game. It seeds
// the occupied corners, propagates fixedness along the edges while
// the color matches, then repeatedly fills interior cells whose two
// cardinal neighbors and their shared diagonal are already fixed and
// of the same color, until a pass adds nothing new. The result is an
// under-approximation by design (used only as an evaluator feature)
// and is symmetric under rotation/reflection.
func (b Board) FixedStones() (int8, int8) {
	var cell [NumCell][NumCell]Side
	anyCorner := false
	for x := 0; x < NumCell; x++ {
		for y := 0; y < NumCell; y++ {
			cell[x][y] = b.At(x, y)
		}
	}
	for _, c := range corners {
		if cell[c[0]][c[1]] != None {
			anyCorner = true
			break
		}
	}
	if !anyCorner {
		return 0, 0
	}

	var fixed [NumCell][NumCell]bool

	for ci, c := range corners {
		color := cell[c[0]][c[1]]
		if color == None {
			continue
		}
		fixed[c[0]][c[1]] = true
		for _, step := range edgeWalks[ci] {
			x, y := c[0], c[1]
			for {
				nx, ny := x+step[0], y+step[1]
				if nx < 0 || nx >= NumCell || ny < 0 || ny >= NumCell {
					break
				}
				if cell[nx][ny] != color {
					break
				}
				fixed[nx][ny] = true
				x, y = nx, ny
			}
		}
	}

	for {
		changed := false
		for x := 0; x < NumCell; x++ {
			for y := 0; y < NumCell; y++ {
				if fixed[x][y] || cell[x][y] == None {
					continue
				}
				color := cell[x][y]
				for _, o := range lOrientations {
					hx, hy := x+o[0], y
					vx, vy := x, y+o[1]
					dx, dy := x+o[0], y+o[1]
					if !inBounds(hx, hy) || !inBounds(vx, vy) || !inBounds(dx, dy) {
						continue
					}
					if fixed[hx][hy] && cell[hx][hy] == color &&
						fixed[vx][vy] && cell[vx][vy] == color &&
						fixed[dx][dy] && cell[dx][dy] == color {
						fixed[x][y] = true
						changed = true
						break
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	var nb, nw int8
	for x := 0; x < NumCell; x++ {
		for y := 0; y < NumCell; y++ {
			if !fixed[x][y] {
				continue
			}
			switch cell[x][y] {
			case Black:
				nb++
			case White:
				nw++
			}
		}
	}
	return nb, nw
}

func inBounds(x, y int) bool {
	return x >= 0 && x < NumCell && y >= 0 && y < NumCell
}
