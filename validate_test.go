package ricochet

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func TestParseMoves(t *testing.T) {
	input := "RU-RD-BL-br-gU-gd-gl-gr-yu-yd-yl-yr"
	moves, err := ParseMoves(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 12 {
		t.Fatalf("parsed %d moves, want 12", len(moves))
	}
	if moves[0] != (Move{Robot: Red, Dir: Up}) {
		t.Fatalf("first move: got %v", moves[0])
	}
	if got := FormatMoves(moves[:3]); got != "RU-RD-BL" {
		t.Fatalf("formatting: got %q", got)
	}
}

func TestParseMoveRejects(t *testing.T) {
	for _, in := range []string{"XU", "R", "RUU", "R?"} {
		if _, err := ParseMove(in); err == nil {
			t.Fatalf("ParseMove(%q) accepted", in)
		}
	}
	if _, err := ParseMoves(""); err == nil {
		t.Fatal("ParseMoves accepted empty input")
	}
}

func TestValidateMultiGoalAnyRobotWins(t *testing.T) {
	robots := cornerRobots()
	robots[Blue] = Position{X: 7, Y: 0}
	robots[Red] = Position{X: 7, Y: 10}

	goal := Goal{Pos: Position{X: 7, Y: 9}, Color: GoalMulti}
	res := Validate(robots, NewWalls(), []Move{{Robot: Blue, Dir: Down}}, goal)

	if !res.Valid {
		t.Fatalf("expected valid result, got reason: %v", res.Reason)
	}
	if res.Winner != Blue {
		t.Fatalf("winner: got %s, want blue", res.Winner)
	}
	if res.MoveCount != 1 {
		t.Fatalf("move count: got %d, want 1", res.MoveCount)
	}
}

func TestValidateWrongRobotForSingleColorGoal(t *testing.T) {
	robots := cornerRobots()
	robots[Blue] = Position{X: 5, Y: 0}
	robots[Green] = Position{X: 5, Y: 6}
	robots[Red] = Position{X: 0, Y: 0}

	goal := Goal{Pos: Position{X: 5, Y: 5}, Color: GoalRed}
	res := Validate(robots, NewWalls(), []Move{{Robot: Blue, Dir: Down}}, goal)

	if res.Valid {
		t.Fatal("blue parking on a red goal counted as a solve")
	}
	if !errors.Is(res.Reason, ErrGoalNotReached) {
		t.Fatalf("reason: got %v", res.Reason)
	}
	var gnr *GoalNotReachedError
	if !errors.As(res.Reason, &gnr) {
		t.Fatalf("reason type: got %T", res.Reason)
	}
	if gnr.Robot != Red {
		t.Fatalf("required robot: got %s, want red", gnr.Robot)
	}
	if gnr.Final != (Position{X: 0, Y: 0}) {
		t.Fatalf("red final position: got %s, want (0,0)", gnr.Final)
	}
}

func TestValidateMalformedMove(t *testing.T) {
	robots := cornerRobots()
	goal := Goal{Pos: Position{X: 5, Y: 5}, Color: GoalRed}

	moves := []Move{
		{Robot: Red, Dir: Up},
		{Robot: Color(7), Dir: Up},
	}
	res := Validate(robots, NewWalls(), moves, goal)

	if res.Valid {
		t.Fatal("malformed move accepted")
	}
	if !errors.Is(res.Reason, ErrMalformedMove) {
		t.Fatalf("reason: got %v", res.Reason)
	}
	var mm *MalformedMoveError
	if !errors.As(res.Reason, &mm) {
		t.Fatalf("reason type: got %T", res.Reason)
	}
	if mm.Index != 1 {
		t.Fatalf("failing index: got %d, want 1", mm.Index)
	}
}

func TestValidateEmptyAndOversizedSolutions(t *testing.T) {
	robots := cornerRobots()
	goal := Goal{Pos: Position{X: 5, Y: 5}, Color: GoalRed}

	res := Validate(robots, NewWalls(), nil, goal)
	if res.Valid || !errors.Is(res.Reason, ErrMalformedMove) {
		t.Fatalf("empty solution: got %+v", res)
	}

	long := make([]Move, MaxSolutionMoves+1)
	for i := range long {
		long[i] = Move{Robot: Red, Dir: Up}
	}
	res = Validate(robots, NewWalls(), long, goal)
	if res.Valid || !errors.Is(res.Reason, ErrMalformedMove) {
		t.Fatalf("oversized solution: got %+v", res)
	}
}

func TestValidateDoesNotMutateCaller(t *testing.T) {
	robots := cornerRobots()
	robots[Red] = Position{X: 3, Y: 3}
	saved := robots

	goal := Goal{Pos: Position{X: 5, Y: 5}, Color: GoalRed}
	Validate(robots, NewWalls(), []Move{{Robot: Red, Dir: Down}}, goal)

	if robots != saved {
		t.Fatal("validate mutated the caller's initial positions")
	}
}

func TestValidateDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	board, err := Generate(rng)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := ParseMoves("RU-BL-GD-YR-RD")
	if err != nil {
		t.Fatal(err)
	}
	goal := board.Goals[0]

	first := Validate(board.Robots, board.Walls, moves, goal)
	second := Validate(board.Robots, board.Walls, moves, goal)

	if first.Valid != second.Valid || first.Winner != second.Winner || first.MoveCount != second.MoveCount {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if (first.Reason == nil) != (second.Reason == nil) {
		t.Fatalf("reasons differ: %v vs %v", first.Reason, second.Reason)
	}
	if first.Reason != nil && first.Reason.Error() != second.Reason.Error() {
		t.Fatalf("reasons differ: %v vs %v", first.Reason, second.Reason)
	}
}

func TestValidateConcurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	board, err := Generate(rng)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := ParseMoves("RU-RL-BD-GU-YL")
	if err != nil {
		t.Fatal(err)
	}
	goal := board.Goals[4]
	want := Validate(board.Robots, board.Walls, moves, goal)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := Validate(board.Robots, board.Walls, moves, goal)
				if got.Valid != want.Valid || got.MoveCount != want.MoveCount {
					t.Errorf("concurrent validate diverged: %+v vs %+v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
