package ricochet

import (
	"math/rand"
	"testing"
)

func cornerRobots() RobotPositions {
	return RobotPositions{
		Red:    {X: 15, Y: 15},
		Yellow: {X: 14, Y: 15},
		Green:  {X: 13, Y: 15},
		Blue:   {X: 12, Y: 15},
	}
}

func TestSlideStopsBelowWall(t *testing.T) {
	w := NewWalls()
	w.AddHorizontal(0, 2)

	robots := cornerRobots()
	robots[Red] = Position{X: 2, Y: 5}

	got := Slide(w, robots, Red, Up)
	want := Position{X: 2, Y: 1}
	if got != want {
		t.Fatalf("slide up: got %s, want %s", got, want)
	}
}

func TestSlideBoardEdge(t *testing.T) {
	robots := cornerRobots()
	robots[Red] = Position{X: 0, Y: 5}

	got := Slide(NewWalls(), robots, Red, Left)
	if got != robots[Red] {
		t.Fatalf("slide into edge moved robot: got %s", got)
	}
}

func TestSlideStopsBeforeRobot(t *testing.T) {
	robots := cornerRobots()
	robots[Red] = Position{X: 2, Y: 5}
	robots[Blue] = Position{X: 2, Y: 1}

	got := Slide(NewWalls(), robots, Red, Up)
	want := Position{X: 2, Y: 2}
	if got != want {
		t.Fatalf("slide toward robot: got %s, want %s", got, want)
	}
}

func TestSlideBlockedIsNoop(t *testing.T) {
	w := NewWalls()
	w.AddHorizontal(2, 4)

	robots := cornerRobots()
	robots[Green] = Position{X: 4, Y: 3}

	// already flush against the wall above
	first := Slide(w, robots, Green, Up)
	if first != robots[Green] {
		t.Fatalf("blocked slide moved robot: got %s", first)
	}
	robots[Green] = first
	second := Slide(w, robots, Green, Up)
	if second != first {
		t.Fatalf("repeated blocked slide moved robot: got %s", second)
	}
}

func TestSlideNeverOverlapsRobots(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	board, err := Generate(rng)
	if err != nil {
		t.Fatal(err)
	}

	robots := board.Robots
	for i := 0; i < 500; i++ {
		c := Colors[rng.Intn(NumRobots)]
		d := Directions[rng.Intn(4)]
		robots[c] = Slide(board.Walls, robots, c, d)

		for a := 0; a < NumRobots; a++ {
			for b := a + 1; b < NumRobots; b++ {
				if robots[a] == robots[b] {
					t.Fatalf("after %d slides, %s and %s share %s",
						i+1, Color(a), Color(b), robots[a])
				}
			}
		}
	}
}

func TestSlideDoesNotMutateInputs(t *testing.T) {
	w := NewWalls()
	w.AddHorizontal(7, 3)
	before := w.count()

	robots := cornerRobots()
	robots[Red] = Position{X: 3, Y: 12}
	saved := robots

	Slide(w, robots, Red, Up)

	if robots != saved {
		t.Fatal("slide mutated the caller's robot positions")
	}
	if w.count() != before {
		t.Fatal("slide mutated the wall table")
	}
}
