// Package ricochet implements the puzzle core of an asynchronous
// Ricochet-Robots game: the board model, slide physics, solution
// validation, and the constrained-random wall/goal generator.
//
// Everything in this package is a pure computation over caller-owned
// state. Boards are immutable once generated; robot positions are plain
// values that callers copy and fold moves into.
package ricochet

import (
	"encoding/json"
	"fmt"
)

// Size is the board dimension. Cells are addressed (0,0) top-left
// through (Size-1, Size-1) bottom-right.
const Size = 16

// MaxSolutionMoves caps submitted solutions so pathological inputs get
// rejected before replay.
const MaxSolutionMoves = 1000

// NumRobots is fixed: one robot per color.
const NumRobots = 4

// Position is a cell on the board.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Color identifies one of the four robots.
type Color uint8

const (
	Red Color = iota
	Yellow
	Green
	Blue
)

// Colors lists the robots in their canonical order.
var Colors = [NumRobots]Color{Red, Yellow, Green, Blue}

func (c Color) valid() bool { return c < NumRobots }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Letter is the single-character form used in move notation and the
// ASCII board printer.
func (c Color) Letter() byte {
	switch c {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	default:
		return '?'
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("invalid robot color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "red":
		*c = Red
	case "yellow":
		*c = Yellow
	case "green":
		*c = Green
	case "blue":
		*c = Blue
	default:
		return fmt.Errorf("invalid robot color %q", text)
	}
	return nil
}

// Direction is one of the four slide directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all slide directions.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) valid() bool { return d <= Right }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Letter is the single-character form used in move notation.
func (d Direction) Letter() byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	default:
		return '?'
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	case "left":
		*d = Left
	case "right":
		*d = Right
	default:
		return fmt.Errorf("invalid direction %q", text)
	}
	return nil
}

// Step returns the cell one step from p in direction d. The result may
// be out of bounds; callers check walls first.
func (p Position) Step(d Direction) Position {
	switch d {
	case Up:
		return Position{p.X, p.Y - 1}
	case Down:
		return Position{p.X, p.Y + 1}
	case Left:
		return Position{p.X - 1, p.Y}
	case Right:
		return Position{p.X + 1, p.Y}
	default:
		return p
	}
}

// GoalColor is a robot color or the Multi sentinel. A Multi goal is won
// by whichever robot reaches it.
type GoalColor uint8

const (
	GoalRed GoalColor = iota
	GoalYellow
	GoalGreen
	GoalBlue
	GoalMulti
)

// GoalColorOf lifts a robot color into goal-color space.
func GoalColorOf(c Color) GoalColor { return GoalColor(c) }

// Robot returns the robot that must reach a goal of this color. The
// second return is false for Multi goals.
func (gc GoalColor) Robot() (Color, bool) {
	if gc < GoalMulti {
		return Color(gc), true
	}
	return 0, false
}

func (gc GoalColor) valid() bool { return gc <= GoalMulti }

func (gc GoalColor) String() string {
	if gc == GoalMulti {
		return "multi"
	}
	if c, ok := gc.Robot(); ok {
		return c.String()
	}
	return fmt.Sprintf("goalcolor(%d)", uint8(gc))
}

// MarshalText implements encoding.TextMarshaler.
func (gc GoalColor) MarshalText() ([]byte, error) {
	if !gc.valid() {
		return nil, fmt.Errorf("invalid goal color %d", uint8(gc))
	}
	return []byte(gc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (gc *GoalColor) UnmarshalText(text []byte) error {
	if string(text) == "multi" {
		*gc = GoalMulti
		return nil
	}
	var c Color
	if err := c.UnmarshalText(text); err != nil {
		return fmt.Errorf("invalid goal color %q", text)
	}
	*gc = GoalColorOf(c)
	return nil
}

// Orientation selects which two wall segments of an L-shaped corner are
// present around its anchor cell. NW means walls on the north and west
// sides, and so on.
type Orientation uint8

const (
	NW Orientation = iota
	NE
	SW
	SE
)

func (o Orientation) valid() bool { return o <= SE }

func (o Orientation) String() string {
	switch o {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("invalid orientation %d", uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "nw":
		*o = NW
	case "ne":
		*o = NE
	case "sw":
		*o = SW
	case "se":
		*o = SE
	default:
		return fmt.Errorf("invalid orientation %q", text)
	}
	return nil
}

// Move is one robot slid in one direction.
type Move struct {
	Robot Color     `json:"robot"`
	Dir   Direction `json:"direction"`
}

// Goal is a target cell. The goal sits in the corner of its L-shaped
// wall pair, so Pos doubles as the L-shape anchor and Orient selects
// the two segments.
type Goal struct {
	Pos    Position    `json:"position"`
	Color  GoalColor   `json:"color"`
	Orient Orientation `json:"orientation"`
}

// RobotPositions holds one position per robot, indexed by Color. It is
// a value type: assignment copies, so replays never alias caller state.
type RobotPositions [NumRobots]Position

// Occupied reports whether any robot sits on p, and which one.
func (r RobotPositions) Occupied(p Position) (Color, bool) {
	for _, c := range Colors {
		if r[c] == p {
			return c, true
		}
	}
	return 0, false
}

// MarshalJSON emits the wire form: an object keyed by color name.
func (r RobotPositions) MarshalJSON() ([]byte, error) {
	out := make(map[string]Position, NumRobots)
	for _, c := range Colors {
		out[c.String()] = r[c]
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the wire form back, requiring exactly one
// in-bounds position per robot color.
func (r *RobotPositions) UnmarshalJSON(data []byte) error {
	var in map[string]Position
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in) != NumRobots {
		return fmt.Errorf("want %d robots, got %d", NumRobots, len(in))
	}
	for name, p := range in {
		var c Color
		if err := c.UnmarshalText([]byte(name)); err != nil {
			return err
		}
		if !p.InBounds() {
			return fmt.Errorf("%s robot out of bounds at %s", c, p)
		}
		r[c] = p
	}
	return nil
}

// Board is a complete generated puzzle: walls (static block, edge walls
// and 17 goal corners), the goals themselves, and the initial robot
// scatter. Read-only after generation; ID is the board's share code.
type Board struct {
	ID     string         `json:"id"`
	Walls  *Walls         `json:"walls"`
	Goals  []Goal         `json:"goals"`
	Robots RobotPositions `json:"robots"`
}
