package ricochet

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Walls is the wall table. Horizontal[row] holds the columns where a
// wall blocks movement between row and row+1; Vertical[col] holds the
// rows where a wall blocks movement between col and col+1. Board-edge
// walls are implicit and never stored. Entries are deduplicated, kept
// sorted, and only ever added during generation.
type Walls struct {
	Horizontal [Size][]int
	Vertical   [Size][]int
}

// NewWalls returns an empty wall table.
func NewWalls() *Walls { return &Walls{} }

func addSorted(set []int, v int) []int {
	i := sort.SearchInts(set, v)
	if i < len(set) && set[i] == v {
		return set
	}
	set = append(set, 0)
	copy(set[i+1:], set[i:])
	set[i] = v
	return set
}

func contains(set []int, v int) bool {
	i := sort.SearchInts(set, v)
	return i < len(set) && set[i] == v
}

// AddHorizontal adds a wall between (col,row) and (col,row+1).
func (w *Walls) AddHorizontal(row, col int) {
	if row < 0 || row >= Size-1 || col < 0 || col >= Size {
		return
	}
	w.Horizontal[row] = addSorted(w.Horizontal[row], col)
}

// AddVertical adds a wall between (col,row) and (col+1,row).
func (w *Walls) AddVertical(col, row int) {
	if col < 0 || col >= Size-1 || row < 0 || row >= Size {
		return
	}
	w.Vertical[col] = addSorted(w.Vertical[col], row)
}

// HasHorizontal reports a wall between (col,row) and (col,row+1).
func (w *Walls) HasHorizontal(row, col int) bool {
	if row < 0 || row >= Size {
		return false
	}
	return contains(w.Horizontal[row], col)
}

// HasVertical reports a wall between (col,row) and (col+1,row).
func (w *Walls) HasVertical(col, row int) bool {
	if col < 0 || col >= Size {
		return false
	}
	return contains(w.Vertical[col], row)
}

// Blocked reports whether a robot on p is stopped from stepping in
// direction d, either by the board edge or by a wall segment on the
// crossed boundary.
func (w *Walls) Blocked(p Position, d Direction) bool {
	switch d {
	case Up:
		return p.Y == 0 || w.HasHorizontal(p.Y-1, p.X)
	case Down:
		return p.Y == Size-1 || w.HasHorizontal(p.Y, p.X)
	case Left:
		return p.X == 0 || w.HasVertical(p.X-1, p.Y)
	case Right:
		return p.X == Size-1 || w.HasVertical(p.X, p.Y)
	default:
		return true
	}
}

// Clone returns a deep copy.
func (w *Walls) Clone() *Walls {
	cpy := &Walls{}
	for i := 0; i < Size; i++ {
		cpy.Horizontal[i] = append([]int(nil), w.Horizontal[i]...)
		cpy.Vertical[i] = append([]int(nil), w.Vertical[i]...)
	}
	return cpy
}

// count returns the total number of stored segments.
func (w *Walls) count() int {
	n := 0
	for i := 0; i < Size; i++ {
		n += len(w.Horizontal[i]) + len(w.Vertical[i])
	}
	return n
}

type wallsJSON struct {
	Horizontal [][]int `json:"horizontal"`
	Vertical   [][]int `json:"vertical"`
}

// MarshalJSON emits the wire form: horizontal and vertical arrays keyed
// by row/column index, with empty rows as [] rather than null.
func (w *Walls) MarshalJSON() ([]byte, error) {
	out := wallsJSON{
		Horizontal: make([][]int, Size),
		Vertical:   make([][]int, Size),
	}
	for i := 0; i < Size; i++ {
		out.Horizontal[i] = append([]int{}, w.Horizontal[i]...)
		out.Vertical[i] = append([]int{}, w.Vertical[i]...)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the wire form back, re-adding every segment so
// dedup and ordering invariants hold regardless of the producer.
func (w *Walls) UnmarshalJSON(data []byte) error {
	var in wallsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Horizontal) != Size || len(in.Vertical) != Size {
		return fmt.Errorf("wall table must have %d rows and %d columns", Size, Size)
	}
	*w = Walls{}
	for row, cols := range in.Horizontal {
		for _, col := range cols {
			if col < 0 || col >= Size || row >= Size-1 {
				return fmt.Errorf("horizontal wall out of range: row %d col %d", row, col)
			}
			w.AddHorizontal(row, col)
		}
	}
	for col, rows := range in.Vertical {
		for _, row := range rows {
			if row < 0 || row >= Size || col >= Size-1 {
				return fmt.Errorf("vertical wall out of range: col %d row %d", col, row)
			}
			w.AddVertical(col, row)
		}
	}
	return nil
}
