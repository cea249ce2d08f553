package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-rules/internal/domain"
)

const (
	msgInvalidSelection = "Invalid selection, try again."
	msgColumnFull       = "Invalid selection (Row is full.)"
)

// Prompter turns lines typed by a player into a playable column
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadColumn keeps asking until it gets a column (1-7 on screen) that still has room and
// returns it zero based. Running out of input returns io.EOF.
func (p *Prompter) ReadColumn(b *domain.Board) (int, error) {
	for {
		column, err := p.readNumber()
		if err != nil {
			return -1, err
		}

		if b.ColumnHasRoom(column) {
			return column, nil
		}

		fmt.Fprintln(p.out, msgColumnFull)
	}
}

func (p *Prompter) readNumber() (int, error) {
	for {
		// lines of any length are read whole so a long junk line is just one bad selection
		line, err := p.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return -1, fmt.Errorf("failed to read input: %w", err)
			}
			if line == "" {
				return -1, io.EOF
			}
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > domain.Width {
			fmt.Fprintln(p.out, msgInvalidSelection)
			continue
		}

		return n - 1, nil
	}
}
