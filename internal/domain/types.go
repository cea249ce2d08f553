package domain

const (
	Width  = 7
	Height = 6
	ToWin  = 4
)

// CellState is the occupancy of a single grid cell
type CellState int

const (
	Empty CellState = iota
	Red
	Black
)

func (c CellState) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Color is fixed for the lifetime of a game: PlayerOne drops red, PlayerTwo drops black
func (p Player) Color() CellState {
	switch p {
	case PlayerTwo:
		return Black
	default:
		return Red
	}
}

func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	if p == PlayerTwo {
		return "PlayerTwo"
	}
	return "PlayerOne"
}

// Position is zero based: X is the column, Y is the row counted from the bottom
type Position struct {
	X int
	Y int
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
)
