package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(b *Board, color CellState, positions ...Position) {
	for _, p := range positions {
		b.cells[p.Y][p.X] = color
	}
}

func TestCheckForWinEmptyBoard(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.CheckForWin())
	assert.Equal(t, 0, b.LongestChain())

	b.SwitchPlayer()
	assert.False(t, b.CheckForWin())
}

func TestCheckForWinLines(t *testing.T) {
	tests := []struct {
		name  string
		cells []Position
		want  bool
	}{
		{"horizontal four", []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, true},
		{"horizontal three", []Position{{0, 0}, {1, 0}, {2, 0}}, false},
		{"horizontal four at right edge", []Position{{3, 5}, {4, 5}, {5, 5}, {6, 5}}, true},
		{"vertical four", []Position{{6, 0}, {6, 1}, {6, 2}, {6, 3}}, true},
		{"vertical four at top", []Position{{0, 2}, {0, 3}, {0, 4}, {0, 5}}, true},
		{"vertical three", []Position{{6, 0}, {6, 1}, {6, 2}}, false},
		{"up right diagonal", []Position{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, true},
		{"up right diagonal at corner", []Position{{3, 2}, {4, 3}, {5, 4}, {6, 5}}, true},
		{"up left diagonal", []Position{{3, 0}, {2, 1}, {1, 2}, {0, 3}}, true},
		{"up left diagonal at corner", []Position{{6, 2}, {5, 3}, {4, 4}, {3, 5}}, true},
		{"diagonal three", []Position{{0, 0}, {1, 1}, {2, 2}}, false},
		{"horizontal five", []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, true},
		{"full row", []Position{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}}, true},
		{"split by a gap", []Position{{0, 0}, {1, 0}, {3, 0}, {4, 0}}, false},
		{"bent line", []Position{{0, 0}, {1, 0}, {2, 1}, {3, 1}}, false},
		{"wrapped row", []Position{{5, 0}, {6, 0}, {0, 1}, {1, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			fill(b, Red, tt.cells...)
			assert.Equal(t, tt.want, b.CheckForWin())
		})
	}
}

func TestCheckForWinRunLengths(t *testing.T) {
	b := NewBoard()
	fill(b, Red, Position{0, 0}, Position{1, 0}, Position{2, 0}, Position{3, 0}, Position{4, 0})
	assert.Equal(t, 5, b.LongestChain())
	assert.True(t, b.CheckForWin())

	b = NewBoard()
	fill(b, Red, Position{2, 0}, Position{2, 1})
	assert.Equal(t, 2, b.LongestChain())
}

func TestCheckForWinOnlyCountsCurrentPlayer(t *testing.T) {
	b := NewBoard()
	fill(b, Black, Position{0, 0}, Position{1, 0}, Position{2, 0}, Position{3, 0})

	assert.False(t, b.CheckForWin(), "black four during red's turn")

	b.SwitchPlayer()
	assert.True(t, b.CheckForWin())
}

func TestThreeBlockedByOpponentNeverWins(t *testing.T) {
	lines := [][]Position{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{3, 0}, {4, 0}, {5, 0}, {6, 0}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		{{6, 0}, {5, 1}, {4, 2}, {3, 3}},
	}

	for _, line := range lines {
		// the odd cell out can sit at either end of the line
		for _, odd := range []int{0, 3} {
			for _, player := range []Player{PlayerOne, PlayerTwo} {
				b := NewBoard()
				if player == PlayerTwo {
					b.SwitchPlayer()
				}
				for i, p := range line {
					if i == odd {
						fill(b, Black, p)
					} else {
						fill(b, Red, p)
					}
				}
				assert.False(t, b.CheckForWin(), "line %v odd %d player %v", line, odd, player)
			}
		}
	}
}

func TestCheckForWinAfterPlacements(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 3; i++ {
		b.PlacePiece(3, Red)
		assert.False(t, b.CheckForWin())
	}
	b.PlacePiece(3, Red)
	assert.True(t, b.CheckForWin())

	b = NewBoard()
	for column := 0; column < 3; column++ {
		b.PlacePiece(column, Red)
	}
	assert.False(t, b.CheckForWin())
	b.PlacePiece(3, Red)
	assert.True(t, b.CheckForWin())
}

func TestCheckWinFromMatchesFullScan(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBoard()

		for !b.IsFull() {
			column := rng.Intn(Width)
			if !b.ColumnHasRoom(column) {
				continue
			}
			row := b.PlacePiece(column, b.CurrentPlayer().Color())

			full := b.CheckForWin()
			local := b.CheckWinFrom(Position{X: column, Y: row})
			require.Equal(t, full, local, "seed %d column %d row %d", seed, column, row)
			if full {
				break
			}
			b.SwitchPlayer()
		}
	}
}

func TestCheckWinFromIgnoresOtherColor(t *testing.T) {
	b := NewBoard()
	fill(b, Black, Position{0, 0}, Position{1, 0}, Position{2, 0}, Position{3, 0})
	assert.False(t, b.CheckWinFrom(Position{X: 3, Y: 0}))
}

func TestCheckWinFromMiddleOfRun(t *testing.T) {
	b := NewBoard()
	fill(b, Red, Position{1, 1}, Position{2, 2}, Position{3, 3}, Position{4, 4})
	assert.True(t, b.CheckWinFrom(Position{X: 2, Y: 2}))
	assert.True(t, b.CheckWinFrom(Position{X: 4, Y: 4}))

	b = NewBoard()
	fill(b, Red, Position{4, 1}, Position{3, 2}, Position{2, 3}, Position{1, 4})
	assert.True(t, b.CheckWinFrom(Position{X: 3, Y: 2}))
}
