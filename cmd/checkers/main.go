package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	gm "checkers-engine/checkersmg"
	"checkers-engine/engine"
	"checkers-engine/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("checkers failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "checkers",
		Usage: "alpha-beta checkers engine playing Black at a fixed depth of 6 plies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"CHECKERS_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "pretty-log",
				Usage:   "human readable log output",
				EnvVars: []string{"CHECKERS_PRETTY_LOG"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			return logging.Configure(cCtx.String("log-level"), cCtx.Bool("pretty-log"))
		},
		Action: func(cCtx *cli.Context) error {
			return runProtocol(os.Stdin, os.Stdout, engine.DefaultConfig())
		},
		Commands: []*cli.Command{
			{
				Name:  "protocol",
				Usage: "read commands from stdin (newgame, position, go, legal, print, eval, fen, quit)",
				Action: func(cCtx *cli.Context) error {
					return runProtocol(os.Stdin, os.Stdout, engine.DefaultConfig())
				},
			},
			{
				Name:  "search",
				Usage: "print Black's best move for a position",
				Flags: []cli.Flag{fenFlag()},
				Action: func(cCtx *cli.Context) error {
					board, err := gm.ParseFEN(cCtx.String("fen"))
					if err != nil {
						return err
					}
					move, ok := engine.BestMove(board, engine.DefaultConfig())
					if !ok {
						fmt.Println("bestmove (none)")
						return nil
					}
					fmt.Println("bestmove", move)
					return nil
				},
			},
			{
				Name:  "eval",
				Usage: "print the static evaluation of a position",
				Flags: []cli.Flag{fenFlag()},
				Action: func(cCtx *cli.Context) error {
					board, err := gm.ParseFEN(cCtx.String("fen"))
					if err != nil {
						return err
					}
					fmt.Println(board.Pretty(true))
					fmt.Printf("eval %.4f\n", engine.Evaluation(board))
					return nil
				},
			},
			{
				Name:  "perft",
				Usage: "count move tree leaves",
				Flags: []cli.Flag{
					fenFlag(),
					&cli.StringFlag{Name: "side", Value: "red", Usage: "side to move: red or black"},
					&cli.IntFlag{Name: "plies", Value: 4, Usage: "perft depth"},
					&cli.BoolFlag{Name: "divide", Usage: "print per-move node counts at the root"},
					&cli.BoolFlag{Name: "parallel", Usage: "count root moves concurrently (with --divide)"},
				},
				Action: runPerft,
			},
			searchbenchCommand(),
		},
	}
}

func fenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "fen",
		Value: gm.FENStartPos,
		Usage: "position string (defaults to the initial position)",
	}
}

func parseSide(s string) (gm.Side, error) {
	switch s {
	case "red", "r":
		return gm.Red, nil
	case "black", "b":
		return gm.Black, nil
	}
	return gm.Red, fmt.Errorf("unknown side %q", s)
}

func runPerft(cCtx *cli.Context) error {
	plies := cCtx.Int("plies")
	if plies <= 0 {
		return fmt.Errorf("plies must be > 0, got %d", plies)
	}
	board, err := gm.ParseFEN(cCtx.String("fen"))
	if err != nil {
		return err
	}
	side, err := parseSide(cCtx.String("side"))
	if err != nil {
		return err
	}

	start := time.Now()
	if cCtx.Bool("divide") {
		var div map[gm.Move]uint64
		if cCtx.Bool("parallel") {
			div = gm.PerftDivideParallel(board, side, plies)
		} else {
			div = gm.PerftDivide(board, side, plies)
		}
		moves := make([]gm.Move, 0, len(div))
		for m := range div {
			moves = append(moves, m)
		}
		// Sort moves for stable output
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		log.Debug().Dur("elapsed", time.Since(start)).Msg("perft-divide")
		return nil
	}

	nodes := gm.Perft(board, side, plies)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("%d \t%d \t%s \t%.0f\n", plies, nodes, elapsed, nps)
	return nil
}
