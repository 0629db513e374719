package checkersmg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when a move string cannot be parsed.
var ErrInvalidMove = errors.New("invalid move")

// Move relocates the piece on (FromRow, FromCol) to (ToRow, ToCol). A move
// carries no side; legality depends on whose turn it is.
type Move struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// NewMove constructs a Move from its coordinates.
func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

// IsJump reports whether the move spans two rows and therefore captures.
func (m Move) IsJump() bool {
	d := m.ToRow - m.FromRow
	return d == 2 || d == -2
}

// Midpoint returns the square jumped over. Only meaningful for jumps.
func (m Move) Midpoint() (row, col int) {
	return (m.FromRow + m.ToRow) / 2, (m.FromCol + m.ToCol) / 2
}

// ContinuesFrom reports whether the move starts where prev landed.
func (m Move) ContinuesFrom(prev Move) bool {
	return m.FromRow == prev.ToRow && m.FromCol == prev.ToCol
}

// String renders the move in coordinate notation, e.g. "a6b5". Row 0 is
// rank 8 and column 0 is file a.
func (m Move) String() string {
	return squareName(m.FromRow, m.FromCol) + squareName(m.ToRow, m.ToCol)
}

func squareName(row, col int) string {
	return string([]byte{'a' + byte(col), '8' - byte(row)})
}

// ParseMove converts coordinate notation ("a6b5") into a Move.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) != 4 {
		return Move{}, fmt.Errorf("%w: %q has length %d", ErrInvalidMove, movestr, len(movestr))
	}
	fromRow, fromCol, err := parseSquare(movestr[0:2])
	if err != nil {
		return Move{}, err
	}
	toRow, toCol, err := parseSquare(movestr[2:4])
	if err != nil {
		return Move{}, err
	}
	d := toRow - fromRow
	if d != 1 && d != -1 && d != 2 && d != -2 {
		return Move{}, fmt.Errorf("%w: %q is not a diagonal step or jump", ErrInvalidMove, movestr)
	}
	if toCol-fromCol != d && fromCol-toCol != d {
		return Move{}, fmt.Errorf("%w: %q is not a diagonal step or jump", ErrInvalidMove, movestr)
	}
	return NewMove(fromRow, fromCol, toRow, toCol), nil
}

func parseSquare(sq string) (row, col int, err error) {
	file, rank := sq[0], sq[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, 0, fmt.Errorf("%w: bad square %q", ErrInvalidMove, sq)
	}
	return int('8' - rank), int(file - 'a'), nil
}
