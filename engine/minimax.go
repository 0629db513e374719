package engine

import (
	gm "checkers-engine/checkersmg"
)

// ChooseMoveMinimax is ChooseMove without pruning. It visits the whole tree
// and exists to check that pruning never changes the chosen move.
func (s *Searcher) ChooseMoveMinimax(board *gm.Board, legalMoves []gm.Move) (gm.Move, bool) {
	if len(legalMoves) == 0 {
		return gm.Move{}, false
	}
	s.resetStats()
	s.resetFrames()

	b := board.Clone()
	var chosen gm.Move
	bestScore := posInf
	for i, move := range legalMoves {
		score := s.minimaxMove(b, move, -1, Minimizer)
		if i == 0 || score < bestScore {
			bestScore = score
			chosen = move
		}
	}
	return chosen, true
}

// Minimax returns the exact score of board with role to move, under the
// same depth, terminal and jump chain rules as AlphaBeta.
func (s *Searcher) Minimax(b *gm.Board, depth int, role Role, forced *gm.Move) float64 {
	s.stats.Nodes++

	if depth >= s.cfg.MaxDepth {
		s.stats.Leaves++
		return Evaluation(b)
	}

	moves, ok := b.LegalMoves(role.Side())
	if !ok {
		s.stats.Terminals++
		return lossScore(role)
	}

	value := posInf
	if role == Maximizer {
		value = negInf
	}
	for _, move := range moves {
		if forced != nil && !move.ContinuesFrom(*forced) {
			continue
		}
		score := s.minimaxMove(b, move, depth, role)
		if role == Maximizer {
			value = Max(value, score)
		} else {
			value = Min(value, score)
		}
	}
	return value
}

// minimaxMove plays move for role at depth and returns the exact score of
// the resulting position. Root moves use depth -1 so their replies start at
// ply 0.
func (s *Searcher) minimaxMove(b *gm.Board, move gm.Move, depth int, role Role) float64 {
	promoted, unapply := s.applyMoveWithState(b, move)
	defer unapply()

	if b.HasFollowUpJump(role.Side(), move, promoted) {
		s.stats.Continuations++
		return s.Minimax(b, depth+1, role, &move)
	}
	return s.Minimax(b, depth+1, role.Opponent(), nil)
}
