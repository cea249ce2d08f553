package domain

import "fmt"

// Board is the grid plus whose turn it is. Row 0 is the bottom row.
type Board struct {
	cells   [Height][Width]CellState
	current Player
}

func NewBoard() *Board {
	return &Board{current: PlayerOne}
}

func (b *Board) CurrentPlayer() Player {
	return b.current
}

func (b *Board) SwitchPlayer() {
	b.current = b.current.Other()
}

func (b *Board) Cell(p Position) CellState {
	return b.cells[p.Y][p.X]
}

// ColumnHasRoom reports whether the column still has an empty cell.
// The column index must already be range checked.
func (b *Board) ColumnHasRoom(column int) bool {
	return b.cells[Height-1][column] == Empty
}

// PlacePiece drops color into the lowest empty row of column and returns that row.
// Placing into a full column is a programming error: callers check ColumnHasRoom first.
func (b *Board) PlacePiece(column int, color CellState) int {
	for row := 0; row < Height; row++ {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = color
			return row
		}
	}

	panic(fmt.Sprintf("place piece: column %d is full", column))
}

func (b *Board) IsFull() bool {
	for c := 0; c < Width; c++ {
		if b.ColumnHasRoom(c) {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid ordered top to bottom, the way it is displayed
func (b *Board) Rows() [Height][Width]CellState {
	var rows [Height][Width]CellState
	for i := 0; i < Height; i++ {
		rows[i] = b.cells[Height-1-i]
	}
	return rows
}

// Snapshot converts the grid to plain ints (bottom row first) for storage
func (b *Board) Snapshot() [][]int {
	snapshot := make([][]int, Height)
	for r := range b.cells {
		snapshot[r] = make([]int, Width)
		for c, cell := range b.cells[r] {
			snapshot[r][c] = int(cell)
		}
	}
	return snapshot
}
