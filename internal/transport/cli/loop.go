package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/iamasit07/connect4-rules/internal/domain"
)

// Loop plays one hot-seat game: render, prompt, move, until someone wins or the board fills up
type Loop struct {
	Game     *domain.Game
	prompter *Prompter
	out      io.Writer
}

func NewLoop(game *domain.Game, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		Game:     game,
		prompter: NewPrompter(in, out),
		out:      out,
	}
}

// Run returns the game when it is finished. An error means it was abandoned (input closed or
// ctx cancelled) and the game is still active.
func (l *Loop) Run(ctx context.Context) (*domain.Game, error) {
	board := l.Game.Board

	for !l.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return l.Game, err
		}

		Render(l.out, board)
		color := board.CurrentPlayer().Color()
		fmt.Fprintf(l.out, "%v, choose a row number. (1-7)\n", color)

		column, err := l.prompter.ReadColumn(board)
		if err != nil {
			return l.Game, err
		}

		if _, err := l.Game.MakeMove(column); err != nil {
			return l.Game, fmt.Errorf("move rejected: %w", err)
		}
	}

	Render(l.out, board)
	switch l.Game.Status {
	case domain.StatusWon:
		fmt.Fprintf(l.out, "%v wins!\n", l.Game.Winner.Color())
	case domain.StatusDraw:
		fmt.Fprintln(l.out, "It's a draw!")
	}

	return l.Game, nil
}
