package ricochet

import (
	"errors"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// ErrPlacementExhausted marks a generation attempt that could not place
// a goal within its retry budget. The partial board is discarded; the
// caller retries Generate with fresh randomness.
var ErrPlacementExhausted = errors.New("goal placement exhausted")

// PlacementError identifies which placement step ran out of attempts.
type PlacementError struct {
	Quadrant int
	Color    GoalColor
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placing %s goal in quadrant %d: budget of %d attempts exhausted",
		e.Color, e.Quadrant, e.Attempts)
}

func (e *PlacementError) Unwrap() error { return ErrPlacementExhausted }

// Layout holds the geometry constants of the generation pipeline. The
// quadrant boundaries derive from the board half and the center block,
// so revising either stays a one-line change.
type Layout struct {
	CenterMin   int // top-left coordinate of the 2x2 center block
	CenterMax   int // bottom-right coordinate of the center block
	EdgeWallMin int // outer edge wall offset from its corner, in cells
	EdgeWallMax int
	Attempts    int // per-goal placement budget
}

// DefaultLayout is the standard 16x16 board: 2x2 center block at
// (7,7)-(8,8), edge walls 2-7 cells from each corner, 100 attempts per
// goal.
func DefaultLayout() Layout {
	return Layout{
		CenterMin:   7,
		CenterMax:   8,
		EdgeWallMin: 2,
		EdgeWallMax: 7,
		Attempts:    100,
	}
}

func (l Layout) inCenter(p Position) bool {
	return p.X >= l.CenterMin && p.X <= l.CenterMax &&
		p.Y >= l.CenterMin && p.Y <= l.CenterMax
}

// quadrant is a 7x7 goal-anchor region: one quarter of the board, inset
// one cell from the outer ring. The center block cells inside it are
// excluded at placement time.
type quadrant struct {
	id             int
	x0, y0, x1, y1 int
}

func (q quadrant) randCell(rng *rand.Rand) Position {
	return Position{
		X: q.x0 + rng.Intn(q.x1-q.x0+1),
		Y: q.y0 + rng.Intn(q.y1-q.y0+1),
	}
}

func (l Layout) quadrants() [4]quadrant {
	half := Size / 2
	return [4]quadrant{
		{id: 0, x0: 1, y0: 1, x1: half - 1, y1: half - 1},
		{id: 1, x0: half, y0: 1, x1: Size - 2, y1: half - 1},
		{id: 2, x0: 1, y0: half, x1: half - 1, y1: Size - 2},
		{id: 3, x0: half, y0: half, x1: Size - 2, y1: Size - 2},
	}
}

// segment is one wall segment in wall-table coordinates: a horizontal
// segment sits below row idx at column at, a vertical segment sits
// right of column idx at row at.
type segment struct {
	horiz bool
	idx   int
	at    int
}

func (s segment) inWalls(w *Walls) bool {
	if s.horiz {
		return w.HasHorizontal(s.idx, s.at)
	}
	return w.HasVertical(s.idx, s.at)
}

func (s segment) addTo(w *Walls) {
	if s.horiz {
		w.AddHorizontal(s.idx, s.at)
	} else {
		w.AddVertical(s.idx, s.at)
	}
}

// endpoints returns the two lattice corners the segment spans, where
// corner (i,j) is the top-left corner of cell (i,j).
func (s segment) endpoints() [2]Position {
	if s.horiz {
		return [2]Position{{s.at, s.idx + 1}, {s.at + 1, s.idx + 1}}
	}
	return [2]Position{{s.idx + 1, s.at}, {s.idx + 1, s.at + 1}}
}

func (s segment) touches(other segment) bool {
	a, b := s.endpoints(), other.endpoints()
	return a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1]
}

// dirs returns the two sides of the anchor the orientation walls off.
func (o Orientation) dirs() [2]Direction {
	switch o {
	case NW:
		return [2]Direction{Up, Left}
	case NE:
		return [2]Direction{Up, Right}
	case SW:
		return [2]Direction{Down, Left}
	default:
		return [2]Direction{Down, Right}
	}
}

// wallSegments returns the two segments of the goal's L-shaped corner.
func (g Goal) wallSegments() [2]segment {
	x, y := g.Pos.X, g.Pos.Y
	north := segment{horiz: true, idx: y - 1, at: x}
	south := segment{horiz: true, idx: y, at: x}
	west := segment{horiz: false, idx: x - 1, at: y}
	east := segment{horiz: false, idx: x, at: y}

	switch g.Orient {
	case NW:
		return [2]segment{north, west}
	case NE:
		return [2]segment{north, east}
	case SW:
		return [2]segment{south, west}
	default:
		return [2]segment{south, east}
	}
}

// canPlaceLShape tests a candidate goal corner against the accumulated
// board state. Rejects on: segment overlap with any existing wall,
// anchors within a 3x3 box of an existing goal, segments touching the
// static center/edge walls, or the corner fully enclosing its own goal
// cell.
func canPlaceLShape(w *Walls, static []segment, goals []Goal, cand Goal, lay Layout) bool {
	if lay.inCenter(cand.Pos) {
		return false
	}

	segs := cand.wallSegments()
	for _, s := range segs {
		if s.inWalls(w) {
			return false
		}
	}

	for _, g := range goals {
		dx := cand.Pos.X - g.Pos.X
		dy := cand.Pos.Y - g.Pos.Y
		if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
			return false
		}
	}

	for _, s := range segs {
		for _, st := range static {
			if s.touches(st) {
				return false
			}
		}
	}

	// the corner itself walls off two sides; if the remaining two are
	// already blocked the goal cell would be sealed in
	walled := cand.Orient.dirs()
	enclosed := true
	for _, d := range Directions {
		if d == walled[0] || d == walled[1] {
			continue
		}
		if !w.Blocked(cand.Pos, d) {
			enclosed = false
		}
	}
	return !enclosed
}

// staticWalls builds stage one of the pipeline: the 8-segment center
// block and the 8 outer-edge walls, two per quadrant, each offset
// uniformly within the layout's edge range and perpendicular to its
// edge. Returns the wall table and the static segment list used for
// adjacency rejection.
func staticWalls(rng *rand.Rand, lay Layout) (*Walls, []segment) {
	w := NewWalls()
	var static []segment

	add := func(s segment) {
		s.addTo(w)
		static = append(static, s)
	}

	// center block: walls surround, never enter, the 2x2 block
	cmin, cmax := lay.CenterMin, lay.CenterMax
	for c := cmin; c <= cmax; c++ {
		add(segment{horiz: true, idx: cmin - 1, at: c})
		add(segment{horiz: true, idx: cmax, at: c})
		add(segment{horiz: false, idx: cmin - 1, at: c})
		add(segment{horiz: false, idx: cmax, at: c})
	}

	offset := func() int {
		return lay.EdgeWallMin + rng.Intn(lay.EdgeWallMax-lay.EdgeWallMin+1)
	}

	// outer-edge walls, one per quadrant-edge pair, counted in cells
	// from that quadrant's corner
	// NW: top edge, left edge
	add(segment{horiz: false, idx: offset() - 1, at: 0})
	add(segment{horiz: true, idx: offset() - 1, at: 0})
	// NE: top edge, right edge
	add(segment{horiz: false, idx: Size - 1 - offset(), at: 0})
	add(segment{horiz: true, idx: offset() - 1, at: Size - 1})
	// SW: bottom edge, left edge
	add(segment{horiz: false, idx: offset() - 1, at: Size - 1})
	add(segment{horiz: true, idx: Size - 1 - offset(), at: 0})
	// SE: bottom edge, right edge
	add(segment{horiz: false, idx: Size - 1 - offset(), at: Size - 1})
	add(segment{horiz: true, idx: Size - 1 - offset(), at: Size - 1})

	return w, static
}

// placeGoal attempts to land one goal corner inside q within the
// layout's attempt budget, committing its two wall segments on success.
func placeGoal(rng *rand.Rand, w *Walls, static []segment, goals []Goal, q quadrant, color GoalColor, lay Layout) (Goal, error) {
	for attempt := 0; attempt < lay.Attempts; attempt++ {
		cand := Goal{
			Pos:    q.randCell(rng),
			Color:  color,
			Orient: Orientation(rng.Intn(4)),
		}
		if !canPlaceLShape(w, static, goals, cand, lay) {
			continue
		}
		for _, s := range cand.wallSegments() {
			s.addTo(w)
		}
		return cand, nil
	}
	return Goal{}, &PlacementError{Quadrant: q.id, Color: color, Attempts: lay.Attempts}
}

// PlaceRobots scatters the four robots onto distinct cells that hold no
// goal and sit outside the center block. Exposed separately so robots
// can be re-scattered without regenerating walls and goals.
func PlaceRobots(rng *rand.Rand, goals []Goal, lay Layout) RobotPositions {
	cells := make([]Position, 0, Size*Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			cells = append(cells, Position{x, y})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	isGoal := make(map[Position]bool, len(goals))
	for _, g := range goals {
		isGoal[g.Pos] = true
	}

	var robots RobotPositions
	for _, c := range Colors {
		// pop candidates until one is free
		for {
			p := cells[len(cells)-1]
			cells = cells[:len(cells)-1]
			if isGoal[p] || lay.inCenter(p) {
				continue
			}
			robots[c] = p
			break
		}
	}
	return robots
}

// Generate builds a complete puzzle board from the supplied random
// source using the default layout. The pipeline is a pure function of
// rng, so a seeded source reproduces the same board.
func Generate(rng *rand.Rand) (*Board, error) {
	return GenerateWithLayout(rng, DefaultLayout())
}

// GenerateWithLayout runs the staged pipeline: static walls, one goal
// corner per quadrant per robot color, the multi goal in a random
// quadrant, then the robot scatter. Any placement exhaustion aborts the
// whole attempt; partial boards never escape.
func GenerateWithLayout(rng *rand.Rand, lay Layout) (*Board, error) {
	walls, static := staticWalls(rng, lay)

	quads := lay.quadrants()
	goals := make([]Goal, 0, 4*NumRobots+1)
	for _, q := range quads {
		for _, c := range Colors {
			g, err := placeGoal(rng, walls, static, goals, q, GoalColorOf(c), lay)
			if err != nil {
				log.WithError(err).Warn("board generation failed, retry with fresh randomness")
				return nil, err
			}
			goals = append(goals, g)
		}
	}

	q := quads[rng.Intn(len(quads))]
	g, err := placeGoal(rng, walls, static, goals, q, GoalMulti, lay)
	if err != nil {
		log.WithError(err).Warn("board generation failed, retry with fresh randomness")
		return nil, err
	}
	goals = append(goals, g)

	b := &Board{
		Walls:  walls,
		Goals:  goals,
		Robots: PlaceRobots(rng, goals, lay),
	}
	id, err := Encode(b)
	if err != nil {
		return nil, fmt.Errorf("encoding board id: %v", err)
	}
	b.ID = id
	return b, nil
}
