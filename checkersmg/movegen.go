package checkersmg

// LegalMoves returns every legal move for side. If the side can jump
// anywhere, only jumps are returned. ok is false when the side has no move
// at all, which means it has lost. Every square is scanned, so pieces placed
// off the playable colour with SetPiece still move.
func (b *Board) LegalMoves(side Side) (moves []Move, ok bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			moves = b.appendJumpsFrom(moves, side, row, col)
		}
	}
	if len(moves) > 0 {
		return moves, true
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			moves = b.appendWalksFrom(moves, side, row, col)
		}
	}
	return moves, len(moves) > 0
}

// HasLegalMoves reports whether side can move at all.
func (b *Board) HasLegalMoves(side Side) bool {
	_, ok := b.LegalMoves(side)
	return ok
}

// LegalJumpsFrom returns the jumps the piece on (row, col) can make for
// side. The result is empty if the square does not hold a piece of side or
// no jump is available.
func (b *Board) LegalJumpsFrom(side Side, row, col int) []Move {
	return b.appendJumpsFrom(nil, side, row, col)
}

// LegalWalksFrom returns the non-capturing one-step moves of the piece on
// (row, col) for side.
func (b *Board) LegalWalksFrom(side Side, row, col int) []Move {
	return b.appendWalksFrom(nil, side, row, col)
}

// HasFollowUpJump reports whether the piece that just made m must keep
// jumping. A piece that was crowned by m stops.
func (b *Board) HasFollowUpJump(side Side, m Move, promoted bool) bool {
	if promoted || !m.IsJump() {
		return false
	}
	return len(b.LegalJumpsFrom(side, m.ToRow, m.ToCol)) > 0
}

// rowDirections returns the row deltas the piece may move along, downward
// (toward row 7) first.
func rowDirections(p Piece, side Side) []int {
	if !p.BelongsTo(side) {
		return nil
	}
	if p.IsKing() {
		return bothWays
	}
	if side == Black {
		return downOnly
	}
	return upOnly
}

var (
	bothWays = []int{1, -1}
	downOnly = []int{1}
	upOnly   = []int{-1}
	colSteps = [2]int{1, -1}
)

func (b *Board) appendJumpsFrom(moves []Move, side Side, row, col int) []Move {
	for _, dr := range rowDirections(b.squares[row][col], side) {
		for _, dc := range colSteps {
			toRow, toCol := row+2*dr, col+2*dc
			if !OnBoard(toRow, toCol) || b.squares[toRow][toCol] != Empty {
				continue
			}
			if !b.squares[row+dr][col+dc].BelongsTo(side.Opponent()) {
				continue
			}
			moves = append(moves, NewMove(row, col, toRow, toCol))
		}
	}
	return moves
}

func (b *Board) appendWalksFrom(moves []Move, side Side, row, col int) []Move {
	for _, dr := range rowDirections(b.squares[row][col], side) {
		for _, dc := range colSteps {
			toRow, toCol := row+dr, col+dc
			if !OnBoard(toRow, toCol) || b.squares[toRow][toCol] != Empty {
				continue
			}
			moves = append(moves, NewMove(row, col, toRow, toCol))
		}
	}
	return moves
}
