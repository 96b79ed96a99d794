package ricochet

import "strings"

// PrintBoard renders the board as a dot-and-dash ASCII grid for
// diagnostics: robots as uppercase letters, goals as lowercase letters
// ('m' for the multi goal), robots win the cell when both coincide.
func PrintBoard(b *Board) string {
	var sb strings.Builder

	cellChar := make(map[Position]byte)
	for _, g := range b.Goals {
		switch g.Color {
		case GoalMulti:
			cellChar[g.Pos] = 'm'
		default:
			c, _ := g.Color.Robot()
			cellChar[g.Pos] = c.Letter() + 32
		}
	}
	for _, c := range Colors {
		cellChar[b.Robots[c]] = c.Letter()
	}

	// one row at a time
	for row := 0; row < Size; row++ {
		sb.WriteRune('•')
		for col := 0; col < Size; col++ {
			if row == 0 || b.Walls.HasHorizontal(row-1, col) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
			sb.WriteRune('•')
		}
		sb.WriteString("\n")

		sb.WriteString("|")
		for col := 0; col < Size; col++ {
			sb.WriteString(" ")
			if ch, ok := cellChar[Position{col, row}]; ok {
				sb.WriteByte(ch)
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(" ")

			if col == Size-1 || b.Walls.HasVertical(col, row) {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	// bottom row guaranteed to be all lines
	sb.WriteRune('•')
	for col := 0; col < Size; col++ {
		sb.WriteString("---")
		sb.WriteRune('•')
	}
	sb.WriteString("\n")

	return sb.String()
}
