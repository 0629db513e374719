package engine

import (
	"math"
	"time"

	gm "checkers-engine/checkersmg"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// WinScore is the score of a position where one side has lost: +WinScore
	// when Black is out of pieces or moves, -WinScore for Red.
	WinScore float64 = 100
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Role is the objective of the side to move in the search tree.
type Role uint8

const (
	// Maximizer plays Red and prefers high scores.
	Maximizer Role = iota
	// Minimizer plays Black and prefers low scores. The engine always plays
	// this role.
	Minimizer
)

// Side returns the player taking this role.
func (r Role) Side() gm.Side {
	if r == Maximizer {
		return gm.Red
	}
	return gm.Black
}

// Opponent returns the other role.
func (r Role) Opponent() Role { return 1 - r }

func (r Role) String() string {
	if r == Maximizer {
		return "max"
	}
	return "min"
}

// lossScore is the value of a node where role has no legal move.
func lossScore(r Role) float64 {
	if r == Maximizer {
		return -WinScore
	}
	return WinScore
}

// Searcher runs fixed-depth alpha-beta searches. A Searcher is not safe for
// concurrent use; give each goroutine its own.
type Searcher struct {
	cfg    Config
	stats  Stats
	frames []gm.MoveState
}

// NewSearcher returns a searcher for cfg. A negative depth is treated as 0.
func NewSearcher(cfg Config) *Searcher {
	return &Searcher{cfg: cfg.normalized()}
}

// Config returns the searcher's configuration.
func (s *Searcher) Config() Config { return s.cfg }

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats { return s.stats }

// BestMove picks Black's move on board, or false if Black cannot move.
func BestMove(board *gm.Board, cfg Config) (gm.Move, bool) {
	legalMoves, ok := board.LegalMoves(gm.Black)
	if !ok {
		return gm.Move{}, false
	}
	return NewSearcher(cfg).ChooseMove(board, legalMoves)
}

// ChooseMove returns the move among legalMoves that minimizes the searched
// score, keeping the first on ties. board is left untouched. It returns
// false if legalMoves is empty.
func (s *Searcher) ChooseMove(board *gm.Board, legalMoves []gm.Move) (gm.Move, bool) {
	if len(legalMoves) == 0 {
		return gm.Move{}, false
	}
	s.resetStats()
	s.resetFrames()

	b := board.Clone()
	log.Debug().
		Str("fen", b.ToFEN()).
		Int("candidates", len(legalMoves)).
		Int("max-depth", s.cfg.MaxDepth).
		Msg("search-start")

	startTime := time.Now()
	var chosen gm.Move
	bestScore := posInf
	for i, move := range legalMoves {
		// Every candidate is searched with alpha at -inf, so any score below
		// the current best is exact.
		score := s.rootScore(b, move, negInf, bestScore)
		if i == 0 || score < bestScore {
			bestScore = score
			chosen = move
		}
	}

	log.Debug().
		Str("move", chosen.String()).
		Float64("score", bestScore).
		Dur("elapsed", time.Since(startTime)).
		Object("stats", s.stats).
		Msg("search-done")

	return chosen, true
}

// rootScore plays a root move for Black and searches the reply tree.
func (s *Searcher) rootScore(b *gm.Board, move gm.Move, alpha, beta float64) float64 {
	promoted, unapply := s.applyMoveWithState(b, move)
	defer unapply()

	if b.HasFollowUpJump(gm.Black, move, promoted) {
		s.stats.Continuations++
		return s.AlphaBeta(b, alpha, beta, 0, Minimizer, &move)
	}
	return s.AlphaBeta(b, alpha, beta, 0, Maximizer, nil)
}

// AlphaBeta scores board with role to move, depth plies below the root.
// If forced is set, role is in the middle of a jump chain and only jumps
// from forced's landing square are searched. Scores outside (alpha, beta)
// are bounds: at least the returned value after a beta cutoff, at most after
// an alpha cutoff.
func (s *Searcher) AlphaBeta(b *gm.Board, alpha, beta float64, depth int, role Role, forced *gm.Move) float64 {
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

	if role == Maximizer {
		value := negInf
		for _, move := range moves {
			if forced != nil && !move.ContinuesFrom(*forced) {
				continue
			}
			value = Max(value, s.searchMove(b, move, alpha, beta, depth, role))

			// Beta cutoff
			if value >= beta {
				s.stats.BetaCutoffs++
				return value
			}
			alpha = Max(alpha, value)
		}
		return value
	}

	value := posInf
	for _, move := range moves {
		if forced != nil && !move.ContinuesFrom(*forced) {
			continue
		}
		value = Min(value, s.searchMove(b, move, alpha, beta, depth, role))

		// Alpha cutoff
		if value <= alpha {
			s.stats.AlphaCutoffs++
			return value
		}
		beta = Min(beta, value)
	}
	return value
}

// searchMove plays move for role and searches the resulting position. When
// the move is a jump that can be continued, the same role moves again with
// the same bounds since the turn has not passed.
func (s *Searcher) searchMove(b *gm.Board, move gm.Move, alpha, beta float64, depth int, role Role) float64 {
	promoted, unapply := s.applyMoveWithState(b, move)
	defer unapply()

	if b.HasFollowUpJump(role.Side(), move, promoted) {
		s.stats.Continuations++
		return s.AlphaBeta(b, alpha, beta, depth+1, role, &move)
	}
	return s.AlphaBeta(b, alpha, beta, depth+1, role.Opponent(), nil)
}
