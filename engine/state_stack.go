package engine

import (
	gm "checkers-engine/checkersmg"
)

// The searcher plays moves in place on a single board and keeps one undo
// record per ply on s.frames. Each frame is taken back before its caller
// tries the next sibling, so siblings always start from the same position.

// applyMoveWithState makes the move, records its undo frame and returns
// whether the piece was crowned together with the matching undo.
func (s *Searcher) applyMoveWithState(b *gm.Board, move gm.Move) (bool, func()) {
	st := b.PushMove(move, &s.frames)
	return st.Promoted, func() {
		b.PopMove(&s.frames)
	}
}

// Ply returns the number of moves currently played below the root.
func (s *Searcher) Ply() int { return len(s.frames) }

func (s *Searcher) resetFrames() {
	s.frames = s.frames[:0]
}
