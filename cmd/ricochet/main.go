package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	ricochet "github.com/bannus/async-ricochet-robots-sub000"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ricochet gen [-seed N] [-n N] [-json]")
	fmt.Fprintln(os.Stderr, "       ricochet check -code CODE -moves MOVES [-goal N]")
	os.Exit(2)
}

// puzzleDoc is the emitted puzzle document: a uuid for the persistence
// layer, the share code, and the full wire-form board.
type puzzleDoc struct {
	UUID  string          `json:"uuid"`
	Code  string          `json:"code"`
	Board *ricochet.Board `json:"board"`
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "random seed (0 means time-based)")
	count := fs.Int("n", 1, "number of puzzles to generate")
	asJSON := fs.Bool("json", false, "emit puzzle documents as JSON")
	retries := fs.Int("retries", 10, "full regeneration attempts per puzzle")
	fs.Parse(args)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.WithField("seed", *seed).Info("generating puzzles")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for i := 0; i < *count; i++ {
		board := generateWithRetry(rng, *retries)

		if *asJSON {
			doc := puzzleDoc{
				UUID:  uuid.New().String(),
				Code:  board.ID,
				Board: board,
			}
			if err := enc.Encode(doc); err != nil {
				log.Fatalf("encoding puzzle document: %v", err)
			}
		} else {
			fmt.Printf("#%s\n%s", board.ID, ricochet.PrintBoard(board))
		}
	}
}

func generateWithRetry(rng *rand.Rand, retries int) *ricochet.Board {
	for attempt := 0; attempt < retries; attempt++ {
		board, err := ricochet.Generate(rng)
		if err != nil {
			log.WithError(err).Warnf("generation attempt %d failed", attempt+1)
			continue
		}
		return board
	}
	log.Fatalf("unable to generate a board in %d attempts", retries)
	return nil
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	code := fs.String("code", "", "puzzle share code")
	moveStr := fs.String("moves", "", "move list, e.g. RU-BL-GD")
	goalIdx := fs.Int("goal", 0, "index of the active goal on the board")
	fs.Parse(args)

	if *code == "" || *moveStr == "" {
		usage()
	}

	board, err := ricochet.Decode(*code)
	if err != nil {
		log.Fatalf("invalid share code: %v", err)
	}
	moves, err := ricochet.ParseMoves(*moveStr)
	if err != nil {
		log.Fatalf("invalid moves: %v", err)
	}
	if *goalIdx < 0 || *goalIdx >= len(board.Goals) {
		log.Fatalf("goal index %d out of range (board has %d goals)", *goalIdx, len(board.Goals))
	}

	res := ricochet.Validate(board.Robots, board.Walls, moves, board.Goals[*goalIdx])
	if res.Valid {
		log.WithFields(log.Fields{
			"moves":  res.MoveCount,
			"winner": res.Winner.String(),
		}).Info("solution valid")
		return
	}
	log.WithField("moves", res.MoveCount).Errorf("solution rejected: %v", res.Reason)
	os.Exit(1)
}
