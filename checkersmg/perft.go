package checkersmg

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the move tree of the given depth with side
// to move. A jump that must be continued keeps the same side to move for
// the next ply, matching the search.
func Perft(b *Board, side Side, depth int) uint64 {
	c := *b
	return perft(&c, side, depth, nil)
}

func perft(b *Board, side Side, depth int, forced *Move) uint64 {
	if depth == 0 {
		return 1
	}
	moves, ok := b.LegalMoves(side)
	if !ok {
		return 0
	}

	var nodes uint64
	for _, m := range moves {
		if forced != nil && !m.ContinuesFrom(*forced) {
			continue
		}
		nodes += perftMove(b, side, depth, m)
	}
	return nodes
}

// perftMove plays m, counts the subtree below it and takes m back.
func perftMove(b *Board, side Side, depth int, m Move) uint64 {
	st := b.MakeMove(m)
	defer b.UnmakeMove(st)

	if b.HasFollowUpJump(side, m, st.Promoted) {
		return perft(b, side, depth-1, &m)
	}
	return perft(b, side.Opponent(), depth-1, nil)
}

// PerftDivide returns the node count below each root move.
func PerftDivide(b *Board, side Side, depth int) map[Move]uint64 {
	c := *b
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	moves, _ := c.LegalMoves(side)
	for _, m := range moves {
		out[m] = perftMove(&c, side, depth, m)
	}
	return out
}

// PerftDivideParallel is PerftDivide with each root move counted on its own
// copy of the board in a separate goroutine.
func PerftDivideParallel(b *Board, side Side, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	moves, _ := b.LegalMoves(side)
	counts := make([]uint64, len(moves))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, m := range moves {
		i, m := i, m
		c := *b
		g.Go(func() error {
			counts[i] = perftMove(&c, side, depth, m)
			return nil
		})
	}
	_ = g.Wait()

	for i, m := range moves {
		out[m] = counts[i]
	}
	return out
}
