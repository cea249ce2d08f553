package domain

type Game struct {
	Board     *Board
	Status    GameStatus
	Winner    Player
	MoveCount int
}

func NewGame() *Game {
	return &Game{
		Board:     NewBoard(),
		Status:    StatusActive,
		MoveCount: 0,
	}
}

// MakeMove plays column for the current player. Bad columns come back as errors so the
// caller can ask again; the board is left untouched in that case.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	if column < 0 || column >= Width {
		return -1, ErrInvalidColumn
	}

	if !g.Board.ColumnHasRoom(column) {
		return -1, ErrColumnFull
	}

	player := g.Board.CurrentPlayer()
	row := g.Board.PlacePiece(column, player.Color())
	g.MoveCount++

	if g.Board.CheckWinFrom(Position{X: column, Y: row}) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	// a full board with no winner ends the game instead of leaving nothing to play
	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.Board.SwitchPlayer()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
