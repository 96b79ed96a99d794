package ricochet

// Slide computes where robot ends up when slid in direction d: it
// advances one cell at a time until the board edge, a wall segment, or
// another robot stops it. Returning the starting cell is a legal no-op.
//
// Slide is a pure function of its inputs; it never mutates them and is
// safe for concurrent use.
func Slide(walls *Walls, robots RobotPositions, robot Color, d Direction) Position {
	pos := robots[robot]
	for {
		if walls.Blocked(pos, d) {
			return pos
		}
		next := pos.Step(d)
		if _, ok := robots.Occupied(next); ok {
			return pos
		}
		pos = next
	}
}
