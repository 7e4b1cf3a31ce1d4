package game

// Cell is a grid coordinate (column, row). The origin is the top-left of
// the playfield.
type Cell struct {
	X int
	Y int
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the per-move cell offset for the direction.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{0, -1}
	case DirDown:
		return Cell{0, 1}
	case DirLeft:
		return Cell{-1, 0}
	default:
		return Cell{1, 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// BlockReason says why a proposed move was rejected.
type BlockReason int

const (
	BlockedWall BlockReason = iota
	BlockedSelf
)

func (r BlockReason) String() string {
	if r == BlockedWall {
		return "wall"
	}
	return "self"
}

// MoveOutcome is the result of proposing a one-cell move. A blocked move is
// an ordinary value, not an error: the state machine turns it into the
// game-over transition.
type MoveOutcome struct {
	Blocked bool
	Reason  BlockReason
	NewHead Cell
}

// Body is the snake: a head-first sequence of grid cells. At rest the cells
// never repeat; a move that would repeat one is reported as Blocked(self)
// before anything mutates.
type Body struct {
	cells []Cell
}

// NewBody builds a body of the given length with its head at head,
// trailing to the left, moving right.
func NewBody(head Cell, length int) *Body {
	if length < 1 {
		length = 1
	}
	cells := make([]Cell, length)
	for i := range cells {
		cells[i] = Cell{head.X - i, head.Y}
	}
	return &Body{cells: cells}
}

// Head returns the leading cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Neck returns the cell behind the head, if the body has one.
func (b *Body) Neck() (Cell, bool) {
	if len(b.cells) < 2 {
		return Cell{}, false
	}
	return b.cells[1], true
}

// Len returns the number of body cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the body cells, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// CellSet returns the occupied cells as a set.
func (b *Body) CellSet() map[Cell]bool {
	set := make(map[Cell]bool, len(b.cells))
	for _, c := range b.cells {
		set[c] = true
	}
	return set
}

// Contains reports whether any body cell equals c.
func (b *Body) Contains(c Cell) bool {
	for _, bc := range b.cells {
		if bc == c {
			return true
		}
	}
	return false
}

// ProposeMove computes the outcome of advancing one cell in d without
// mutating the body. The caller applies Grow or Advance on success.
func (b *Body) ProposeMove(d Direction, gridW, gridH int) MoveOutcome {
	dd := d.Delta()
	head := b.Head()
	next := Cell{head.X + dd.X, head.Y + dd.Y}
	if next.X < 0 || next.X >= gridW || next.Y < 0 || next.Y >= gridH {
		return MoveOutcome{Blocked: true, Reason: BlockedWall, NewHead: next}
	}
	if b.Contains(next) {
		return MoveOutcome{Blocked: true, Reason: BlockedSelf, NewHead: next}
	}
	return MoveOutcome{NewHead: next}
}

// Grow inserts a new head and keeps the tail (length +1).
func (b *Body) Grow(head Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = head
}

// Advance inserts a new head and drops the tail (length unchanged).
func (b *Body) Advance(head Cell) {
	copy(b.cells[1:], b.cells[:len(b.cells)-1])
	b.cells[0] = head
}

// DropTail removes the last cell. Callers enforce the minimum length.
func (b *Body) DropTail() {
	if len(b.cells) > 1 {
		b.cells = b.cells[:len(b.cells)-1]
	}
}
