package ricochet

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMove marks a solution rejected before replay because
	// a move references an unknown robot or direction.
	ErrMalformedMove = errors.New("malformed move")

	// ErrGoalNotReached marks a solution that replayed cleanly but left
	// the required robot (or, for multi goals, every robot) off the
	// goal cell.
	ErrGoalNotReached = errors.New("goal not reached")
)

// MalformedMoveError reports the index of the first bad move. Index 0
// with an empty move list means the solution itself was empty.
type MalformedMoveError struct {
	Index  int
	Move   Move
	Detail string
}

func (e *MalformedMoveError) Error() string {
	return fmt.Sprintf("move %d: %s", e.Index, e.Detail)
}

func (e *MalformedMoveError) Unwrap() error { return ErrMalformedMove }

// GoalNotReachedError carries the diagnostic detail for a failed
// replay: which robot was required (unset for multi goals) and where it
// actually ended up.
type GoalNotReachedError struct {
	Goal  Goal
	Robot Color    // required robot; meaningful only for single-color goals
	Final Position // that robot's final position
}

func (e *GoalNotReachedError) Error() string {
	if e.Goal.Color == GoalMulti {
		return fmt.Sprintf("no robot reached the multi goal at %s", e.Goal.Pos)
	}
	return fmt.Sprintf("%s robot ended at %s, goal at %s", e.Robot, e.Final, e.Goal.Pos)
}

func (e *GoalNotReachedError) Unwrap() error { return ErrGoalNotReached }

// Result is the outcome of replaying one submitted solution.
type Result struct {
	Valid     bool
	MoveCount int
	Winner    Color // robot that reached the goal; meaningful only when Valid
	Reason    error // *MalformedMoveError or *GoalNotReachedError when !Valid
}

// Validate replays moves from initial against walls and decides whether
// goal was reached and by which robot. The caller's initial positions
// are never mutated; replay folds into a private copy. Deterministic
// and safe to call concurrently.
func Validate(initial RobotPositions, walls *Walls, moves []Move, goal Goal) Result {
	res := Result{MoveCount: len(moves)}

	if len(moves) == 0 {
		res.Reason = &MalformedMoveError{Index: 0, Detail: "empty solution"}
		return res
	}
	if len(moves) > MaxSolutionMoves {
		res.Reason = &MalformedMoveError{
			Index:  MaxSolutionMoves,
			Detail: fmt.Sprintf("solution exceeds %d moves", MaxSolutionMoves),
		}
		return res
	}

	robots := initial // array copy
	for i, m := range moves {
		if !m.Robot.valid() {
			res.Reason = &MalformedMoveError{
				Index: i, Move: m,
				Detail: fmt.Sprintf("invalid robot color %d", uint8(m.Robot)),
			}
			return res
		}
		if !m.Dir.valid() {
			res.Reason = &MalformedMoveError{
				Index: i, Move: m,
				Detail: fmt.Sprintf("invalid direction %d", uint8(m.Dir)),
			}
			return res
		}
		robots[m.Robot] = Slide(walls, robots, m.Robot, m.Dir)
	}

	if goal.Color == GoalMulti {
		if c, ok := robots.Occupied(goal.Pos); ok {
			res.Valid = true
			res.Winner = c
			return res
		}
		res.Reason = &GoalNotReachedError{Goal: goal}
		return res
	}

	required, _ := goal.Color.Robot()
	if robots[required] == goal.Pos {
		res.Valid = true
		res.Winner = required
		return res
	}
	res.Reason = &GoalNotReachedError{Goal: goal, Robot: required, Final: robots[required]}
	return res
}
