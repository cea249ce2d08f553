package domain

// Direction is one of the four scan directions. Their opposites are never walked: every line
// is reached from its lowest (or leftmost) cell.
type Direction int

const (
	Up Direction = iota
	UpLeft
	UpRight
	Right
)

func AllDirections() [4]Direction {
	return [4]Direction{Up, UpLeft, UpRight, Right}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// CanExtend reports whether one step in d from p stays on the grid
func CanExtend(d Direction, p Position) bool {
	switch d {
	case Up:
		return p.Y != Height-1
	case UpLeft:
		return p.Y != Height-1 && p.X != 0
	case UpRight:
		return p.Y != Height-1 && p.X != Width-1
	case Right:
		return p.X != Width-1
	}
	return false
}

// Step moves one cell in d. The caller must have checked CanExtend first.
func Step(d Direction, p Position) Position {
	switch d {
	case Up:
		return Position{X: p.X, Y: p.Y + 1}
	case UpLeft:
		return Position{X: p.X - 1, Y: p.Y + 1}
	case UpRight:
		return Position{X: p.X + 1, Y: p.Y + 1}
	case Right:
		return Position{X: p.X + 1, Y: p.Y}
	}
	return p
}
