package checkersmg

// MoveState holds what is needed to undo a move made with MakeMove.
type MoveState struct {
	Move     Move
	Moved    Piece
	Captured Piece
	Promoted bool

	prevZobrist uint64
}

// ApplyMove plays m on the board: the piece moves, a jumped piece is
// removed and a man reaching its far row is crowned. It returns true if the
// move crowned the piece. The move is assumed legal.
func (b *Board) ApplyMove(m Move) bool {
	return b.MakeMove(m).Promoted
}

// MakeMove plays m like ApplyMove and returns the record needed to take it
// back with UnmakeMove.
func (b *Board) MakeMove(m Move) MoveState {
	st := MoveState{
		Move:        m,
		Moved:       b.squares[m.FromRow][m.FromCol],
		prevZobrist: b.zobristKey,
	}

	b.setSquare(m.ToRow, m.ToCol, st.Moved)
	b.setSquare(m.FromRow, m.FromCol, Empty)

	if m.IsJump() {
		midRow, midCol := m.Midpoint()
		st.Captured = b.squares[midRow][midCol]
		b.setSquare(midRow, midCol, Empty)
	}

	switch {
	case st.Moved == RedMan && m.ToRow == Red.PromotionRow():
		b.setSquare(m.ToRow, m.ToCol, RedKing)
		st.Promoted = true
	case st.Moved == BlackMan && m.ToRow == Black.PromotionRow():
		b.setSquare(m.ToRow, m.ToCol, BlackKing)
		st.Promoted = true
	}
	return st
}

// UnmakeMove restores the position from before the move recorded in st.
// Moves must be taken back in reverse order.
func (b *Board) UnmakeMove(st MoveState) {
	m := st.Move
	b.squares[m.FromRow][m.FromCol] = st.Moved
	b.squares[m.ToRow][m.ToCol] = Empty
	if m.IsJump() {
		midRow, midCol := m.Midpoint()
		b.squares[midRow][midCol] = st.Captured
	}
	b.zobristKey = st.prevZobrist
}

// Apply plays a move and returns an undo closure.
func (b *Board) Apply(m Move) func() {
	st := b.MakeMove(m)
	return func() { b.UnmakeMove(st) }
}

// PushMove makes the move and appends its undo record to stack.
func (b *Board) PushMove(m Move, stack *[]MoveState) MoveState {
	st := b.MakeMove(m)
	*stack = append(*stack, st)
	return st
}

// PopMove takes back the last move pushed with PushMove.
// It panics if the stack is empty.
func (b *Board) PopMove(stack *[]MoveState) {
	n := len(*stack)
	if n == 0 {
		panic("PopMove: empty stack")
	}
	st := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	b.UnmakeMove(st)
}
