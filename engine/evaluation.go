package engine

import (
	gm "checkers-engine/checkersmg"
)

// =============================================================================
// PIECE VALUES
// =============================================================================
const (
	ManValue         = 1.0
	ManTwoRowsAway   = 1.2
	ManOneRowAway    = 1.45
	KingValue        = 2.5
	WallPenaltyRatio = 0.75
)

// Evaluation scores the board from Red's point of view: positive favours
// Red (the maximizer), negative favours Black. A side without pieces has
// lost and the score is WinScore for the other side.
func Evaluation(b *gm.Board) float64 {
	var red, black float64

	for row := 0; row < gm.Size; row++ {
		for col := row % 2; col < gm.Size; col += 2 {
			switch b.PieceAt(row, col) {
			case gm.RedMan:
				red += manValue(gm.Red, row, col)
			case gm.BlackMan:
				black += manValue(gm.Black, row, col)
			case gm.RedKing:
				red += kingValue(row, col)
			case gm.BlackKing:
				black += kingValue(row, col)
			}
		}
	}

	if black == 0 {
		return WinScore
	}
	if red == 0 {
		return -WinScore
	}
	return red - black
}

// manValue rewards men close to promotion. A man on a side column can only
// move one way and is worth less.
func manValue(side gm.Side, row, col int) float64 {
	value := ManValue
	switch abs(row - side.PromotionRow()) {
	case 1:
		value = ManOneRowAway
	case 2:
		value = ManTwoRowsAway
	}
	if onSideColumn(col) {
		value *= WallPenaltyRatio
	}
	return value
}

// kingValue loses a quarter for each wall the king touches.
func kingValue(row, col int) float64 {
	value := KingValue
	if row == 0 || row == gm.Size-1 {
		value *= WallPenaltyRatio
	}
	if onSideColumn(col) {
		value *= WallPenaltyRatio
	}
	return value
}

func onSideColumn(col int) bool { return col == 0 || col == gm.Size-1 }
