package ricochet

import (
	"fmt"

	"github.com/njones/base58"
)

// share-code layout:
//   version | H bitmaps (16 x uint16) | V bitmaps (16 x uint16) |
//   goal count | per goal: cell, color<<2|orient | R Y G B cells
const (
	codeVersion = 1
	numGoals    = 4*NumRobots + 1
	codeLen     = 1 + 2*Size + 2*Size + 1 + 2*numGoals + NumRobots
)

func cellByte(p Position) byte { return byte(p.Y*Size + p.X) }

func byteCell(b byte) Position { return Position{X: int(b) % Size, Y: int(b) / Size} }

// Encode packs a complete board into its base58 share code. The code
// is deterministic: encoding a decoded board yields the same string.
func Encode(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("nil board")
	}
	if len(b.Goals) != numGoals {
		return "", fmt.Errorf("unexpected goal count %d for encoding", len(b.Goals))
	}

	buf := make([]byte, 0, codeLen)
	buf = append(buf, codeVersion)

	for row := 0; row < Size; row++ {
		var bits uint16
		for _, col := range b.Walls.Horizontal[row] {
			bits |= 1 << uint(col)
		}
		buf = append(buf, byte(bits>>8), byte(bits))
	}
	for col := 0; col < Size; col++ {
		var bits uint16
		for _, row := range b.Walls.Vertical[col] {
			bits |= 1 << uint(row)
		}
		buf = append(buf, byte(bits>>8), byte(bits))
	}

	buf = append(buf, byte(len(b.Goals)))
	for _, g := range b.Goals {
		buf = append(buf, cellByte(g.Pos), byte(g.Color)<<2|byte(g.Orient))
	}

	for _, c := range Colors {
		buf = append(buf, cellByte(b.Robots[c]))
	}

	return base58.StdEncoding.EncodeToString(buf), nil
}

// Decode rebuilds a board from its share code, revalidating structure
// so a mangled code never yields a half-formed board.
func Decode(id string) (*Board, error) {
	buf, err := base58.StdEncoding.DecodeString(id)
	if err != nil {
		return nil, fmt.Errorf("decoding share code: %v", err)
	}
	if len(buf) != codeLen {
		return nil, fmt.Errorf("share code length %d, want %d", len(buf), codeLen)
	}
	if buf[0] != codeVersion {
		return nil, fmt.Errorf("unknown share code version %d", buf[0])
	}

	b := &Board{ID: id, Walls: NewWalls()}
	at := 1

	for row := 0; row < Size; row++ {
		bits := uint16(buf[at])<<8 | uint16(buf[at+1])
		at += 2
		for col := 0; col < Size; col++ {
			if bits&(1<<uint(col)) != 0 {
				b.Walls.AddHorizontal(row, col)
			}
		}
	}
	for col := 0; col < Size; col++ {
		bits := uint16(buf[at])<<8 | uint16(buf[at+1])
		at += 2
		for row := 0; row < Size; row++ {
			if bits&(1<<uint(row)) != 0 {
				b.Walls.AddVertical(col, row)
			}
		}
	}

	if int(buf[at]) != numGoals {
		return nil, fmt.Errorf("unexpected goal count %d in share code", buf[at])
	}
	at++
	for i := 0; i < numGoals; i++ {
		color := GoalColor(buf[at+1] >> 2)
		orient := Orientation(buf[at+1] & 0x3)
		if !color.valid() {
			return nil, fmt.Errorf("goal %d: invalid color %d", i, buf[at+1]>>2)
		}
		b.Goals = append(b.Goals, Goal{Pos: byteCell(buf[at]), Color: color, Orient: orient})
		at += 2
	}

	for _, c := range Colors {
		b.Robots[c] = byteCell(buf[at])
		at++
	}
	for i := 0; i < NumRobots; i++ {
		for j := i + 1; j < NumRobots; j++ {
			if b.Robots[i] == b.Robots[j] {
				return nil, fmt.Errorf("share code places two robots on %s", b.Robots[i])
			}
		}
	}

	return b, nil
}
