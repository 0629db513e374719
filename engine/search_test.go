package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gm "checkers-engine/checkersmg"
)

const doubleJumpFEN = "......b./.b...r../..r...../......../....r.../......../......../.......r"

func legalBlack(t *testing.T, b *gm.Board) []gm.Move {
	t.Helper()
	moves, ok := b.LegalMoves(gm.Black)
	require.True(t, ok)
	return moves
}

func TestBestMoveFromStart(t *testing.T) {
	b := gm.NewBoard()
	move, ok := BestMove(b, DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, "g6f5", move.String())
	assert.Equal(t, gm.FENStartPos, b.ToFEN())
}

func TestChosenMoveHasLowestScore(t *testing.T) {
	b := gm.NewBoard()
	s := NewSearcher(Config{MaxDepth: 4})
	legal := legalBlack(t, b)

	chosen, ok := s.ChooseMove(b, legal)
	require.True(t, ok)

	scores := make(map[gm.Move]float64, len(legal))
	exact := NewSearcher(Config{MaxDepth: 4})
	for _, m := range legal {
		c := b.Clone()
		c.ApplyMove(m)
		scores[m] = exact.Minimax(c, 0, Maximizer, nil)
	}
	first := legal[0]
	for _, m := range legal {
		assert.GreaterOrEqual(t, scores[m], scores[chosen], "candidate %s", m)
		if scores[m] < scores[first] {
			first = m
		}
	}
	// Ties keep the earliest candidate.
	assert.Equal(t, first, chosen)
}

func TestChooseMoveLeavesBoardUntouched(t *testing.T) {
	b := gm.MustParseFEN(doubleJumpFEN)
	fen, hash := b.ToFEN(), b.Hash()
	s := NewSearcher(Config{MaxDepth: 4})

	_, ok := s.ChooseMove(b, legalBlack(t, b))
	require.True(t, ok)
	assert.Equal(t, fen, b.ToFEN())
	assert.Equal(t, hash, b.Hash())
	assert.Zero(t, s.Ply())
	assert.NotZero(t, s.Stats().Nodes)
}

func TestChooseMoveWithoutCandidates(t *testing.T) {
	s := NewSearcher(DefaultConfig())
	_, ok := s.ChooseMove(gm.NewBoard(), nil)
	assert.False(t, ok)

	_, ok = s.ChooseMoveMinimax(gm.NewBoard(), nil)
	assert.False(t, ok)

	// Black is blocked in.
	b := gm.MustParseFEN("b......./.r....../..r...../......../......../......../......../........")
	_, ok = BestMove(b, DefaultConfig())
	assert.False(t, ok)
}

func TestChooseMoveDoubleJumpByDepth(t *testing.T) {
	want := []string{"g8e6", "b7d5", "b7d5", "b7d5", "b7d5"}
	for depth, expected := range want {
		b := gm.MustParseFEN(doubleJumpFEN)
		s := NewSearcher(Config{MaxDepth: depth})
		move, ok := s.ChooseMove(b, legalBlack(t, b))
		require.True(t, ok)
		assert.Equal(t, expected, move.String(), "depth %d", depth)
	}
}

func TestNoMovesScoresAsLoss(t *testing.T) {
	s := NewSearcher(DefaultConfig())

	redBlocked := gm.MustParseFEN("......../......../......../......../......../...b..../b.b...../.r......")
	require.False(t, redBlocked.HasLegalMoves(gm.Red))
	assert.Equal(t, -WinScore, s.AlphaBeta(redBlocked, negInf, posInf, 0, Maximizer, nil))
	assert.Equal(t, -WinScore, s.Minimax(redBlocked, 0, Maximizer, nil))

	blackBlocked := gm.MustParseFEN("b......./.r....../..r...../......../......../......../......../........")
	require.False(t, blackBlocked.HasLegalMoves(gm.Black))
	assert.Equal(t, WinScore, s.AlphaBeta(blackBlocked, negInf, posInf, 0, Minimizer, nil))
	assert.Equal(t, uint64(3), s.Stats().Terminals)
}

func TestDepthLimitReturnsEvaluation(t *testing.T) {
	b := gm.MustParseFEN(doubleJumpFEN)
	s := NewSearcher(Config{MaxDepth: 3})
	assert.InDelta(t, Evaluation(b), s.AlphaBeta(b, negInf, posInf, 3, Maximizer, nil), 1e-9)
	assert.Equal(t, uint64(1), s.Stats().Leaves)
}

func TestForcedContinuation(t *testing.T) {
	b := gm.MustParseFEN(doubleJumpFEN)
	first := gm.NewMove(1, 1, 3, 3)
	b.ApplyMove(first)

	s := NewSearcher(Config{MaxDepth: 1})
	// Only d5f3 may be played, whereas free choice would pick g8e6.
	assert.InDelta(t, 0.0, s.AlphaBeta(b, negInf, posInf, 0, Minimizer, &first), 1e-9)
	assert.InDelta(t, -0.25, s.AlphaBeta(b, negInf, posInf, 0, Minimizer, nil), 1e-9)

	s = NewSearcher(Config{MaxDepth: 2})
	assert.InDelta(t, 0.425, s.AlphaBeta(b, negInf, posInf, 0, Minimizer, &first), 1e-9)
	assert.InDelta(t, 0.425, s.AlphaBeta(b, negInf, posInf, 0, Minimizer, nil), 1e-9)
}

func TestContinuationKeepsRoleAndAddsPly(t *testing.T) {
	b := gm.MustParseFEN(doubleJumpFEN)
	first := gm.NewMove(1, 1, 3, 3)
	b.ApplyMove(first)

	s := NewSearcher(Config{MaxDepth: 3})
	forced := s.AlphaBeta(b, negInf, posInf, 0, Minimizer, &first)

	b.ApplyMove(gm.NewMove(3, 3, 5, 5))
	manual := s.AlphaBeta(b, negInf, posInf, 1, Maximizer, nil)
	assert.InDelta(t, 0.175, manual, 1e-9)
	assert.InDelta(t, manual, forced, 1e-9)
}

// randomPosition plays plies random moves from the initial position and
// returns the board with Black to move, or nil if the game ended first.
func randomPosition(rnd *rand.Rand, plies int) *gm.Board {
	b := gm.NewBoard()
	side := gm.Red
	var forced *gm.Move
	for i := 0; i < plies || side != gm.Black || forced != nil; i++ {
		moves, ok := b.LegalMoves(side)
		if !ok {
			return nil
		}
		if forced != nil {
			var cont []gm.Move
			for _, m := range moves {
				if m.ContinuesFrom(*forced) {
					cont = append(cont, m)
				}
			}
			moves = cont
		}
		m := moves[rnd.Intn(len(moves))]
		if b.HasFollowUpJump(side, m, b.ApplyMove(m)) {
			forced = &m
			continue
		}
		forced = nil
		side = side.Opponent()
	}
	return b
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	checked := 0
	for game := 0; game < 30; game++ {
		b := randomPosition(rnd, 4+rnd.Intn(30))
		if b == nil {
			continue
		}
		legal, ok := b.LegalMoves(gm.Black)
		if !ok {
			continue
		}
		for depth := 0; depth <= 4; depth++ {
			cfg := Config{MaxDepth: depth}
			ab, _ := NewSearcher(cfg).ChooseMove(b, legal)
			mm, _ := NewSearcher(cfg).ChooseMoveMinimax(b, legal)
			require.Equal(t, mm, ab, "position %s depth %d", b.ToFEN(), depth)
			checked++
		}
	}
	assert.NotZero(t, checked)
}

func TestPruningVisitsFewerNodes(t *testing.T) {
	b := gm.NewBoard()
	legal := legalBlack(t, b)
	cfg := Config{MaxDepth: 4}

	ab := NewSearcher(cfg)
	mm := NewSearcher(cfg)
	m1, _ := ab.ChooseMove(b, legal)
	m2, _ := mm.ChooseMoveMinimax(b, legal)

	assert.Equal(t, m2, m1)
	assert.Less(t, ab.Stats().Nodes, mm.Stats().Nodes)
	assert.NotZero(t, ab.Stats().BetaCutoffs+ab.Stats().AlphaCutoffs)
	assert.Zero(t, mm.Stats().BetaCutoffs+mm.Stats().AlphaCutoffs)
}

func TestRoles(t *testing.T) {
	assert.Equal(t, gm.Red, Maximizer.Side())
	assert.Equal(t, gm.Black, Minimizer.Side())
	assert.Equal(t, Minimizer, Maximizer.Opponent())
	assert.Equal(t, "max", Maximizer.String())
	assert.Equal(t, "min", Minimizer.String())
	assert.Equal(t, -WinScore, lossScore(Maximizer))
	assert.Equal(t, WinScore, lossScore(Minimizer))
}
