// Command selfplay pits two engine players against each other and traces
// the game to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
	"github.com/Gompe/chess/game"
	"github.com/Gompe/chess/mcts"
	"github.com/Gompe/chess/player"
	"github.com/Gompe/chess/search"
	"github.com/Gompe/chess/store"
)

var (
	whiteName = flag.String("white", "pv", "white player: random|minimax|alphabeta|pv|mcts")
	blackName = flag.String("black", "mcts", "black player: random|minimax|alphabeta|pv|mcts")
	moveTime  = flag.Duration("movetime", 2*time.Second, "budget per move for timed searchers")
	maxPlies  = flag.Int("maxplies", 300, "abort the game after this many plies")
	cacheDir  = flag.String("cachedir", "", "directory for the persistent evaluation cache (empty = off)")
	quiet     = flag.Bool("quiet", false, "print only the result, not every position")
)

func main() {
	flag.Parse()

	var scores *store.Store
	if *cacheDir != "" {
		var err error
		scores, err = store.Open(*cacheDir)
		if err != nil {
			log.Fatalf("[Selfplay] opening score store: %v", err)
		}
		defer scores.Close()
	}

	white, err := buildPlayer(*whiteName, scores)
	if err != nil {
		log.Fatalf("[Selfplay] white: %v", err)
	}
	black, err := buildPlayer(*blackName, scores)
	if err != nil {
		log.Fatalf("[Selfplay] black: %v", err)
	}

	g := game.New()
	for g.Status() == board.Ongoing && g.Rounds() < *maxPlies {
		b := g.Board()
		if !*quiet {
			fmt.Println(b.String())
		}

		var m board.Move
		if b.SideToMove() == board.White {
			m = white.SelectMove(&b)
		} else {
			m = black.SelectMove(&b)
		}

		log.Printf("[Selfplay] ply %d: %s plays %s", g.Rounds()+1, b.SideToMove(), m)
		if err := g.ApplyMove(m); err != nil {
			log.Fatalf("[Selfplay] applying %s: %v", m, err)
		}
	}

	b := g.Board()
	fmt.Println(b.String())
	fmt.Printf("Result: %s after %d plies\n", g.Status(), g.Rounds())
}

// standardEval is the evaluator tree the shipped engines search with:
// material and pressure blended, king safety on top, capture-adjusted, and
// clamped below the mate range.
func standardEval(scores *store.Store) eval.Evaluator {
	var core eval.Evaluator = eval.NewCapture(
		eval.NewLinear(
			eval.NewLinear(eval.NewMaterial(), eval.NewPressure(), [2]float64{1.0, 0.01}),
			eval.NewKingSafety(),
			[2]float64{1.0, 0.05},
		),
	)

	if scores != nil {
		core = eval.NewPersistentCache(core, scores)
	}

	return eval.NewClamp(core, 3.0)
}

func buildPlayer(name string, scores *store.Store) (player.Player, error) {
	switch name {
	case "random":
		return player.NewRandom(time.Now().UnixNano()), nil

	case "minimax":
		return player.NewEngine(search.NewMinimax(3), standardEval(scores)), nil

	case "alphabeta":
		return player.NewEngine(search.NewAlphaBeta(5), eval.NewCache(standardEval(scores))), nil

	case "pv":
		return player.NewEngine(
			search.NewTimed(search.NewPVSearch(), *moveTime),
			standardEval(scores),
		), nil

	case "mcts":
		policy := eval.NewSoftmaxPolicy(eval.NewCache(standardEval(scores)), 0.1)
		rollout := eval.NewStochasticRollout(
			eval.NewSoftmaxPolicy(standardEval(scores), 0.25),
			standardEval(scores),
			6, 5, time.Now().UnixNano(),
		)
		midgame := player.NewEngine(mcts.New(policy, 20, 100, 2.0), rollout)

		endgame := player.NewEngine(
			search.NewAlphaBeta(7),
			eval.NewCache(eval.NewCapture(
				eval.NewLinear(eval.NewMaterial(), eval.NewPressure(), [2]float64{1.0, 0.01}),
			)),
		)

		// Switch to the deep searcher once the board thins out.
		return player.NewIfElse(midgame, endgame, func(b *board.Board) bool {
			return b.CountOccupied() >= 12
		}), nil

	default:
		return nil, fmt.Errorf("unknown player %q", name)
	}
}
