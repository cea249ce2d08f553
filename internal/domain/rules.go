package domain

// CheckForWin scans every cell of the current player's color as an anchor and reports whether
// any single-direction walk from it reaches ToWin cells. It must be called after the current
// player has placed and before the turn switches.
func (b *Board) CheckForWin() bool {
	return b.LongestChain() >= ToWin
}

// LongestChain is the longest run of the current player's color found by the exhaustive scan
func (b *Board) LongestChain() int {
	longest := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if chain := b.greatestChainFrom(Position{X: x, Y: y}); chain > longest {
				longest = chain
			}
		}
	}
	return longest
}

// greatestChainFrom returns 0 for cells that are empty or belong to the other player
func (b *Board) greatestChainFrom(anchor Position) int {
	color := b.current.Color()
	cell := b.Cell(anchor)
	if cell == Empty || cell != color {
		return 0
	}

	longest := 1
	for _, d := range AllDirections() {
		if chain := b.chainLength(anchor, d, color); chain > longest {
			longest = chain
		}
	}
	return longest
}

// chainLength walks from anchor in a single direction, counting the anchor itself
func (b *Board) chainLength(anchor Position, d Direction, color CellState) int {
	length := 1
	pos := anchor
	for CanExtend(d, pos) {
		pos = Step(d, pos)
		if b.Cell(pos) != color {
			break
		}
		length++
	}
	return length
}

// CheckWinFrom only looks at lines through p, the cell that was just filled. For a board that
// had no winner before that placement it gives the same answer as CheckForWin.
func (b *Board) CheckWinFrom(p Position) bool {
	color := b.current.Color()
	if b.Cell(p) != color {
		return false
	}

	for _, d := range AllDirections() {
		// back up to the first cell of the run so the forward walk covers all of it
		start := p
		for {
			prev, ok := stepBack(d, start)
			if !ok || b.Cell(prev) != color {
				break
			}
			start = prev
		}

		if b.chainLength(start, d, color) >= ToWin {
			return true
		}
	}
	return false
}

func stepBack(d Direction, p Position) (Position, bool) {
	var prev Position
	switch d {
	case Up:
		prev = Position{X: p.X, Y: p.Y - 1}
	case UpLeft:
		prev = Position{X: p.X + 1, Y: p.Y - 1}
	case UpRight:
		prev = Position{X: p.X - 1, Y: p.Y - 1}
	case Right:
		prev = Position{X: p.X - 1, Y: p.Y}
	}

	if prev.X < 0 || prev.X >= Width || prev.Y < 0 || prev.Y >= Height {
		return p, false
	}
	return prev, true
}
