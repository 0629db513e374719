package checkersmg

import "math/rand"

// Zobrist keys indexed by piece code and square (row*Size + col).
var zobristPiece [BlackKing + 1][Size * Size]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so keys are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := RedMan; p <= BlackKing; p++ {
		for sq := 0; sq < Size*Size; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
}

// ComputeZobrist calculates the key of the placement from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := b.squares[row][col]; p != Empty {
				key ^= zobristPiece[p][row*Size+col]
			}
		}
	}
	return key
}
