package checkersmg

// Size is the number of rows and columns on the board.
const Size = 8

// Piece is the content of a single square.
type Piece uint8

const (
	Empty     Piece = 0
	RedMan    Piece = 1
	RedKing   Piece = 2
	BlackMan  Piece = 3
	BlackKing Piece = 4
)

// Side identifies a player. Red starts on rows 5-7 and moves toward row 0,
// Black starts on rows 0-2 and moves toward row 7.
type Side uint8

const (
	Red   Side = 0
	Black Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side { return 1 - s }

func (s Side) String() string {
	if s == Red {
		return "red"
	}
	return "black"
}

// PromotionRow is the far row on which a man of this side becomes a king.
func (s Side) PromotionRow() int {
	if s == Red {
		return 0
	}
	return Size - 1
}

// Man returns the non-king piece of the side.
func (s Side) Man() Piece {
	if s == Red {
		return RedMan
	}
	return BlackMan
}

// King returns the king piece of the side.
func (s Side) King() Piece {
	if s == Red {
		return RedKing
	}
	return BlackKing
}

// IsKing reports whether the piece is a promoted piece of either side.
func (p Piece) IsKing() bool { return p == RedKing || p == BlackKing }

// BelongsTo reports whether the piece is a man or king of the given side.
func (p Piece) BelongsTo(s Side) bool {
	if s == Red {
		return p == RedMan || p == RedKing
	}
	return p == BlackMan || p == BlackKing
}

// Board is the 8x8 grid of squares. It is a plain value: copying a Board
// yields an independent position.
type Board struct {
	squares [Size][Size]Piece

	// Zobrist key of the current placement, maintained incrementally.
	zobristKey uint64
}

// NewBoard returns a board set up for a new game.
func NewBoard() *Board {
	b := &Board{}
	b.setUpGame()
	return b
}

func (b *Board) setUpGame() {
	*b = Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !IsPlayable(row, col) {
				continue
			}
			if row < 3 {
				b.setSquare(row, col, BlackMan)
			} else if row > Size-4 {
				b.setSquare(row, col, RedMan)
			}
		}
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// IsPlayable reports whether pieces may stand on the cell.
func IsPlayable(row, col int) bool { return row%2 == col%2 }

// OnBoard reports whether the coordinates are inside the grid.
func OnBoard(row, col int) bool { return row >= 0 && row < Size && col >= 0 && col < Size }

// PieceAt returns the content of the square.
func (b *Board) PieceAt(row, col int) Piece { return b.squares[row][col] }

// SetPiece puts p on the square, replacing whatever was there.
func (b *Board) SetPiece(row, col int, p Piece) { b.setSquare(row, col, p) }

// ClearSquare empties the square.
func (b *Board) ClearSquare(row, col int) { b.setSquare(row, col, Empty) }

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// setSquare writes a square and keeps the zobrist key in sync.
func (b *Board) setSquare(row, col int, p Piece) {
	old := b.squares[row][col]
	if old == p {
		return
	}
	idx := row*Size + col
	if old != Empty {
		b.zobristKey ^= zobristPiece[old][idx]
	}
	if p != Empty {
		b.zobristKey ^= zobristPiece[p][idx]
	}
	b.squares[row][col] = p
}

// PieceCounts holds the number of pieces of each kind on the board.
type PieceCounts struct {
	RedMen     int
	RedKings   int
	BlackMen   int
	BlackKings int
}

// Red returns the number of red pieces.
func (c PieceCounts) Red() int { return c.RedMen + c.RedKings }

// Black returns the number of black pieces.
func (c PieceCounts) Black() int { return c.BlackMen + c.BlackKings }

// Counts tallies the pieces on the board.
func (b *Board) Counts() PieceCounts {
	var c PieceCounts
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.squares[row][col] {
			case RedMan:
				c.RedMen++
			case RedKing:
				c.RedKings++
			case BlackMan:
				c.BlackMen++
			case BlackKing:
				c.BlackKings++
			}
		}
	}
	return c
}

// Validate checks that every piece stands on a playable cell, that every
// square holds a known piece code and that the zobrist key matches the
// placement.
func (b *Board) Validate() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b.squares[row][col]
			if p > BlackKing {
				return false
			}
			if p != Empty && !IsPlayable(row, col) {
				return false
			}
		}
	}
	return b.zobristKey == b.ComputeZobrist()
}
