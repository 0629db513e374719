package checkersmg

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the position string of a new game. Rows run from row 0
// (rank 8) to row 7 (rank 1); '.' is an empty square, 'r'/'b' are men and
// 'R'/'B' kings.
const FENStartPos = "b.b.b.b./.b.b.b.b/b.b.b.b./......../......../.r.r.r.r/r.r.r.r./.r.r.r.r"

// ErrInvalidFEN is returned when a position string cannot be parsed.
var ErrInvalidFEN = errors.New("invalid position string")

const (
	ansiReset  = "\u001B[0m"
	ansiRed    = "\u001B[31m"
	ansiYellow = "\u001B[33m"
)

// pieceFromChar converts a position character to the corresponding Piece.
func pieceFromChar(ch rune) (Piece, bool) {
	switch ch {
	case '.':
		return Empty, true
	case 'r':
		return RedMan, true
	case 'R':
		return RedKing, true
	case 'b':
		return BlackMan, true
	case 'B':
		return BlackKing, true
	default:
		return Empty, false
	}
}

// charFromPiece converts a Piece to its position character.
func charFromPiece(p Piece) byte {
	switch p {
	case RedMan:
		return 'r'
	case RedKing:
		return 'R'
	case BlackMan:
		return 'b'
	case BlackKing:
		return 'B'
	default:
		return '.'
	}
}

// ParseFEN parses a position string and returns the board it describes.
func ParseFEN(fen string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(fen), "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidFEN, Size, len(rows))
	}

	b := &Board{}
	for row, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrInvalidFEN, row, len(line))
		}
		for col, ch := range line {
			p, ok := pieceFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q at row %d", ErrInvalidFEN, ch, row)
			}
			if p != Empty && !IsPlayable(row, col) {
				return nil, fmt.Errorf("%w: piece on unplayable square %s", ErrInvalidFEN, squareName(row, col))
			}
			b.setSquare(row, col, p)
		}
	}
	return b, nil
}

// MustParseFEN is ParseFEN that panics on invalid input.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// ToFEN serializes the board to a position string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			sb.WriteByte(charFromPiece(b.squares[row][col]))
		}
	}
	return sb.String()
}

// String draws the board with rank numbers on the left and files below.
func (b *Board) String() string { return b.Pretty(false) }

// Pretty draws the board like String, optionally colouring red and black
// pieces with ANSI escapes.
func (b *Board) Pretty(color bool) string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d ", Size-row)
		for col := 0; col < Size; col++ {
			p := b.squares[row][col]
			ch := string(charFromPiece(p))
			if p == Empty && !IsPlayable(row, col) {
				ch = " "
			}
			if color {
				switch {
				case p.BelongsTo(Red):
					ch = ansiRed + ch + ansiReset
				case p.BelongsTo(Black):
					ch = ansiYellow + ch + ansiReset
				}
			}
			sb.WriteString(ch)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
