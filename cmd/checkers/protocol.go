package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	gm "checkers-engine/checkersmg"
	"checkers-engine/engine"
	"checkers-engine/logging"
)

// game tracks the position driven by the protocol loop: the board, the side
// to move and, during a jump chain, the jump that must be continued.
type game struct {
	board  *gm.Board
	toMove gm.Side
	forced *gm.Move
}

func newGame() *game {
	return &game{board: gm.NewBoard(), toMove: gm.Red}
}

// legalMoves returns the moves of the side to move, restricted to the
// continuation of the current jump chain if there is one.
func (g *game) legalMoves() []gm.Move {
	moves, _ := g.board.LegalMoves(g.toMove)
	if g.forced == nil {
		return moves
	}
	out := moves[:0:0]
	for _, m := range moves {
		if m.ContinuesFrom(*g.forced) {
			out = append(out, m)
		}
	}
	return out
}

// play makes a legal move and passes the turn unless the move must be
// followed by another jump.
func (g *game) play(m gm.Move) error {
	legal := false
	for _, lm := range g.legalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("move %s is not legal for %s", m, g.toMove)
	}

	promoted := g.board.ApplyMove(m)
	if g.board.HasFollowUpJump(g.toMove, m, promoted) {
		g.forced = &m
		return nil
	}
	g.forced = nil
	g.toMove = g.toMove.Opponent()
	return nil
}

// runProtocol reads one command per line from r and answers on w until
// "quit" or end of input.
func runProtocol(r io.Reader, w io.Writer, cfg engine.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	g := newGame()

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "newgame":
			g = newGame()
		case "isready":
			fmt.Fprintln(w, "readyok")
		case "quit":
			return nil
		case "print":
			fmt.Fprintln(w, g.board.String())
			fmt.Fprintln(w, "to move:", g.toMove)
		case "fen":
			fmt.Fprintln(w, g.board.ToFEN(), g.toMove)
		case "eval":
			fmt.Fprintf(w, "eval %.4f\n", engine.Evaluation(g.board))
		case "legal":
			moves := g.legalMoves()
			strs := make([]string, len(moves))
			for i, m := range moves {
				strs[i] = m.String()
			}
			fmt.Fprintln(w, "legal", strings.Join(strs, " "))
		case "go":
			handleGo(w, g, tokens[1:], cfg)
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(w, "info string", err)
				continue
			}
			g = next
			logging.Debugf("position %s, %s to move", g.board.ToFEN(), g.toMove)
		default:
			fmt.Fprintln(w, "info string Unknown command:", line)
		}
	}
	return scanner.Err()
}

func handleGo(w io.Writer, g *game, args []string, cfg engine.Config) {
	for _, arg := range args {
		fmt.Fprintln(w, "info string Unknown go subcommand", arg)
	}

	if g.toMove != gm.Black {
		fmt.Fprintln(w, "info string engine plays black; red to move")
		return
	}
	searcher := engine.NewSearcher(cfg)
	best, ok := searcher.ChooseMove(g.board, g.legalMoves())
	if !ok {
		fmt.Fprintln(w, "bestmove (none)")
		return
	}
	st := searcher.Stats()
	fmt.Fprintf(w, "info depth %d nodes %d\n", cfg.MaxDepth, st.Nodes)
	fmt.Fprintln(w, "bestmove", best)
}

// parsePosition handles "startpos [moves ...]" and
// "fen <position> [red|black] [moves ...]". Moves alternate sides starting
// with the side to move; a jump that must be continued keeps the turn.
func parsePosition(args []string) (*game, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("malformed position command")
	}
	g := newGame()
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
	case "fen":
		if len(rest) == 0 {
			return nil, fmt.Errorf("invalid fen position")
		}
		board, err := gm.ParseFEN(rest[0])
		if err != nil {
			return nil, err
		}
		g.board = board
		rest = rest[1:]
		if len(rest) > 0 && strings.ToLower(rest[0]) != "moves" {
			side, err := parseSide(strings.ToLower(rest[0]))
			if err != nil {
				return nil, err
			}
			g.toMove = side
			rest = rest[1:]
		}
	default:
		return nil, fmt.Errorf("invalid position subcommand %q", args[0])
	}

	if len(rest) == 0 {
		return g, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return nil, fmt.Errorf("expected moves, got %q", rest[0])
	}
	for _, moveStr := range rest[1:] {
		m, err := gm.ParseMove(moveStr)
		if err != nil {
			return nil, err
		}
		if err := g.play(m); err != nil {
			return nil, fmt.Errorf("move %s not legal for position %s: %w", moveStr, g.board.ToFEN(), err)
		}
	}
	return g, nil
}
