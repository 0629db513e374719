package bench

import (
	"testing"

	gm "checkers-engine/checkersmg"
)

const midgameFEN = "b.b...b./.b.b.b.b/b...b.../.b.r...b/......r./.r...r.r/r.r.r.r./.r.r...r"

func benchLegalMoves(b *testing.B, fen string, side gm.Side) {
	board, err := gm.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = board.LegalMoves(side)
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, gm.FENStartPos, gm.Red)
}

func BenchmarkLegalMoves_Midgame(b *testing.B) {
	benchLegalMoves(b, midgameFEN, gm.Black)
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := gm.NewBoard()
	moves, _ := board.LegalMoves(gm.Red)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st := board.MakeMove(moves[i%len(moves)])
		board.UnmakeMove(st)
	}
}
