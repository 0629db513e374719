package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	gm "checkers-engine/checkersmg"
	"checkers-engine/engine"
)

func searchbenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "searchbench",
		Usage: "time repeated searches of one position, optionally under pprof",
		Flags: []cli.Flag{
			fenFlag(),
			&cli.IntFlag{Name: "repeat", Value: 1, Usage: "number of searches to run"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write CPU profile to file"},
			&cli.StringFlag{Name: "memprofile", Usage: "write memory profile (heap) to file"},
		},
		Action: func(cCtx *cli.Context) error {
			board, err := gm.ParseFEN(cCtx.String("fen"))
			if err != nil {
				return err
			}

			if path := cCtx.String("cpuprofile"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("could not start CPU profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			if err := searchbench(os.Stdout, board, engine.DefaultConfig(), cCtx.Int("repeat")); err != nil {
				return err
			}

			if path := cCtx.String("memprofile"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("could not create memory profile: %w", err)
				}
				defer f.Close()
				runtime.GC()
				if err := pprof.WriteHeapProfile(f); err != nil {
					return fmt.Errorf("could not write memory profile: %w", err)
				}
			}
			return nil
		},
	}
}

// searchbench runs repeat searches for Black on board and prints one line
// per run followed by the total time.
func searchbench(w io.Writer, board *gm.Board, cfg engine.Config, repeat int) error {
	if repeat <= 0 {
		return fmt.Errorf("repeat must be positive, got %d", repeat)
	}
	legal, ok := board.LegalMoves(gm.Black)
	if !ok {
		return fmt.Errorf("black has no legal move in %s", board.ToFEN())
	}

	fmt.Fprintf(w, "searchbench: fen=%q depth=%d repeat=%d\n", board.ToFEN(), cfg.MaxDepth, repeat)
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		searcher := engine.NewSearcher(cfg)
		iterStart := time.Now()
		best, _ := searcher.ChooseMove(board, legal)
		elapsed := time.Since(iterStart)

		st := searcher.Stats()
		fmt.Fprintf(w, "iteration %d: bestmove %s nodes=%d time=%v\n", i+1, best, st.Nodes, elapsed)
		log.Debug().Int("iteration", i+1).Object("stats", st).Msg("searchbench")
	}
	fmt.Fprintf(w, "total time: %v\n", time.Since(startAll))
	return nil
}
