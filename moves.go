package ricochet

import (
	"fmt"
	"strings"
)

// String renders a move in the two-character share notation, e.g. "RU"
// for red up.
func (m Move) String() string {
	return fmt.Sprintf("%c%c", m.Robot.Letter(), m.Dir.Letter())
}

// FormatMoves joins moves with dashes: "RU-BL-GD".
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, "-")
}

// ParseMoves parses a dash- or space-separated move list such as
// "RU-BL-gd". Case-insensitive. Rejects pathological inputs before
// allocating per-move state.
func ParseMoves(in string) ([]Move, error) {
	in = strings.TrimSpace(in)
	f := func(r rune) bool {
		return r == ' ' || r == '-'
	}
	parts := strings.FieldsFunc(in, f)

	if len(parts) == 0 {
		return nil, fmt.Errorf("no moves provided")
	}
	if len(parts) > MaxSolutionMoves {
		return nil, fmt.Errorf("too many moves... rejecting")
	}

	moves := make([]Move, 0, len(parts))
	for _, p := range parts {
		m, err := ParseMove(p)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseMove parses a single two-character move token.
func ParseMove(in string) (Move, error) {
	if len(in) != 2 {
		return Move{}, fmt.Errorf("invalid move %q", in)
	}
	var m Move
	upper := strings.ToUpper(in)
	switch upper[0] {
	case 'R':
		m.Robot = Red
	case 'Y':
		m.Robot = Yellow
	case 'G':
		m.Robot = Green
	case 'B':
		m.Robot = Blue
	default:
		return Move{}, fmt.Errorf("invalid robot ID %q", in[:1])
	}
	switch upper[1] {
	case 'U':
		m.Dir = Up
	case 'D':
		m.Dir = Down
	case 'L':
		m.Dir = Left
	case 'R':
		m.Dir = Right
	default:
		return Move{}, fmt.Errorf("invalid move direction %q", in[1:])
	}
	return m, nil
}
