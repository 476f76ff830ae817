package board

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/matzehuels/tetrus/pkg/core/piece"
)

// Sentinel errors returned by Board operations.
var (
	// ErrInsertionBlocked is returned by Spawn when the new piece overlaps
	// settled cells or does not fit the grid.
	ErrInsertionBlocked = errors.New("insertion blocked")

	// ErrRotationBlocked is returned by Rotate when the rotated piece would
	// lose cells to the grid edge or overlap settled cells.
	ErrRotationBlocked = errors.New("rotation blocked")

	// ErrLandedOnBoundary is returned by Tick when the piece reached the
	// bottom row.
	ErrLandedOnBoundary = errors.New("block landed on the grid boundary")

	// ErrLandedOnBlock is returned by Tick when the piece came to rest on a
	// settled cell.
	ErrLandedOnBlock = errors.New("block collided with a settled block")

	// ErrInvalidCell is returned by Place for out-of-grid or overlapping
	// cells.
	ErrInvalidCell = errors.New("invalid cell")

	// ErrUnknownKind is returned by Spawn for kinds outside the catalog.
	ErrUnknownKind = errors.New("unknown piece kind")
)

// IsLanded reports whether err signals that the falling piece has landed.
func IsLanded(err error) bool {
	return errors.Is(err, ErrLandedOnBoundary) || errors.Is(err, ErrLandedOnBlock)
}

// Cell is a colored grid coordinate. X grows to the right, Y grows down.
type Cell struct {
	X, Y  int
	Color piece.Color
}

// Direction selects horizontal movement.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Rotation selects the rotation sense.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return fmt.Sprintf("rotation(%d)", int(r))
	}
}

// Board owns the settled and falling cell sets of one grid.
type Board struct {
	columns int
	rows    int

	// settled maps key(x, y) to the cell color.
	settled *intmap.Map[int, piece.Color]
	falling []Cell

	isBlockFalling bool
	lastCleared    int
}

// New creates an empty board. Dimensions below 1 are raised to 1.
func New(columns, rows int) *Board {
	return &Board{
		columns: max(columns, 1),
		rows:    max(rows, 1),
		settled: intmap.New[int, piece.Color](max(columns, 1) * max(rows, 1)),
	}
}

// Columns returns the grid width.
func (b *Board) Columns() int { return b.columns }

// Rows returns the grid height.
func (b *Board) Rows() int { return b.rows }

// IsBlockFalling reports whether a piece is currently active.
func (b *Board) IsBlockFalling() bool { return b.isBlockFalling }

// LastCleared returns the number of rows removed by the most recent
// landing.
func (b *Board) LastCleared() int { return b.lastCleared }

// Settled returns a snapshot of the settled cells sorted by (y, x).
func (b *Board) Settled() []Cell {
	out := make([]Cell, 0, b.settled.Len())
	b.settled.ForEach(func(k int, color piece.Color) bool {
		x, y := b.unkey(k)
		out = append(out, Cell{X: x, Y: y, Color: color})
		return true
	})
	sortCells(out)
	return out
}

// Falling returns a snapshot of the falling piece sorted by (y, x).
func (b *Board) Falling() []Cell {
	out := slices.Clone(b.falling)
	sortCells(out)
	return out
}

// Place adds cells to the settled set. It fails with ErrInvalidCell if any
// cell is outside the grid or overlaps an occupied cell, in which case the
// board is unchanged.
func (b *Board) Place(cells ...Cell) error {
	seen := make(map[int]struct{}, len(cells))
	for _, c := range cells {
		if c.X < 0 || c.X >= b.columns || c.Y < 0 || c.Y >= b.rows {
			return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrInvalidCell, c.X, c.Y, b.columns, b.rows)
		}
		k := b.key(c.X, c.Y)
		if _, dup := seen[k]; dup || b.settled.Has(k) || b.fallingAt(c.X, c.Y) {
			return fmt.Errorf("%w: (%d,%d) already occupied", ErrInvalidCell, c.X, c.Y)
		}
		seen[k] = struct{}{}
	}
	for _, c := range cells {
		b.settled.Put(b.key(c.X, c.Y), c.Color)
	}
	return nil
}

// Spawn inserts a piece of the given kind at the top of the grid,
// horizontally centered with a left bias for odd widths.
func (b *Board) Spawn(kind piece.Kind) error {
	coords := piece.Coordinates(kind)
	if len(coords) == 0 {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	w := piece.Width(kind)
	offset := b.columns/2 - w/2 - w%2

	candidate := make([]Cell, 0, len(coords))
	for _, c := range coords {
		x := c.X + offset
		if x < 0 || x >= b.columns {
			return ErrInsertionBlocked
		}
		candidate = append(candidate, Cell{X: x, Y: c.Y, Color: c.Color})
	}

	if b.collides(candidate) {
		return ErrInsertionBlocked
	}

	b.falling = candidate
	b.isBlockFalling = true
	return nil
}

// TranslateHorizontal shifts the falling piece one column. The move is
// dropped when any cell is already at the edge in that direction or the
// shifted piece would overlap settled cells.
func (b *Board) TranslateHorizontal(dir Direction) {
	var dx, edge int
	switch dir {
	case Left:
		dx, edge = -1, 0
	case Right:
		dx, edge = 1, b.columns-1
	default:
		return
	}

	moved := make([]Cell, 0, len(b.falling))
	for _, c := range b.falling {
		if c.X == edge {
			return
		}
		moved = append(moved, Cell{X: c.X + dx, Y: c.Y, Color: c.Color})
	}

	if len(moved) != len(b.falling) || b.collides(moved) {
		return
	}
	b.falling = moved
}

// Rotate turns the falling piece a quarter turn inside its bounding
// square. Cells rotated off the grid are dropped first, so a rotation
// against a wall fails the cardinality check instead of clipping.
func (b *Board) Rotate(rot Rotation) error {
	if len(b.falling) == 0 {
		return ErrRotationBlocked
	}

	minX, minY := b.falling[0].X, b.falling[0].Y
	maxX, maxY := minX, minY
	for _, c := range b.falling[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	n := max(maxX-minX+1, maxY-minY+1)
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for _, c := range b.falling {
		m[c.Y-minY][c.X-minX] = true
	}

	switch rot {
	case Clockwise:
		transpose(m)
		reverseRows(m)
	case CounterClockwise:
		reverseRows(m)
		transpose(m)
	default:
		return ErrRotationBlocked
	}

	color := b.falling[0].Color
	rotated := make([]Cell, 0, len(b.falling))
	for y, row := range m {
		for x, filled := range row {
			if !filled {
				continue
			}
			ax, ay := x+minX, y+minY
			if ax >= b.columns || ay >= b.rows {
				continue
			}
			rotated = append(rotated, Cell{X: ax, Y: ay, Color: color})
		}
	}

	if len(rotated) != len(b.falling) || b.collides(rotated) {
		return ErrRotationBlocked
	}
	b.falling = rotated
	return nil
}

// Tick moves the falling piece down one row. If the piece cannot move it
// is merged into the settled set as it stands, completed rows are cleared,
// and a landing error is returned. Tick is a no-op without a falling
// piece.
func (b *Board) Tick() error {
	if len(b.falling) == 0 {
		return nil
	}

	moved := make([]Cell, 0, len(b.falling))
	for _, c := range b.falling {
		y := c.Y + 1
		if y >= b.rows {
			break
		}
		moved = append(moved, Cell{X: c.X, Y: y, Color: c.Color})
	}

	if len(moved) != len(b.falling) {
		b.land()
		return ErrLandedOnBoundary
	}
	if b.collides(moved) {
		b.land()
		return ErrLandedOnBlock
	}
	b.falling = moved
	return nil
}

// HardDrop ticks until the falling piece lands. It returns the number of
// rows descended and the landing error. Without a falling piece it returns
// (0, nil).
func (b *Board) HardDrop() (int, error) {
	if len(b.falling) == 0 {
		return 0, nil
	}
	rows := 0
	for {
		if err := b.Tick(); err != nil {
			return rows, err
		}
		rows++
	}
}

// ClearCompletedLines removes every full row and re-stacks the remaining
// non-empty rows from the bottom of the grid upward, keeping their
// original order, x and color. It returns the number of rows removed.
func (b *Board) ClearCompletedLines() int {
	byRow := make([][]Cell, b.rows)
	var overflow []Cell
	b.settled.ForEach(func(k int, color piece.Color) bool {
		x, y := b.unkey(k)
		c := Cell{X: x, Y: y, Color: color}
		if y < 0 || y >= b.rows {
			overflow = append(overflow, c)
			return true
		}
		byRow[y] = append(byRow[y], c)
		return true
	})

	cleared := 0
	surviving := make([][]Cell, 0, b.rows)
	for _, row := range byRow {
		switch len(row) {
		case b.columns:
			cleared++
		case 0:
		default:
			surviving = append(surviving, row)
		}
	}

	b.settled.Clear()
	for i := range surviving {
		row := surviving[len(surviving)-1-i]
		y := b.rows - 1 - i
		for _, c := range row {
			b.settled.Put(b.key(c.X, y), c.Color)
		}
	}
	for _, c := range overflow {
		b.settled.Put(b.key(c.X, c.Y), c.Color)
	}
	return cleared
}

// Collides reports whether two cell sets share an (x, y) position, ignoring
// color, or whether any cell of either set lies beyond the row bound
// (y > rows).
func Collides(a, b []Cell, rows int) bool {
	type point struct{ x, y int }
	seen := make(map[point]struct{}, len(a))
	for _, cell := range a {
		if cell.Y > rows {
			return true
		}
		seen[point{cell.X, cell.Y}] = struct{}{}
	}
	for _, cell := range b {
		if cell.Y > rows {
			return true
		}
		if _, ok := seen[point{cell.X, cell.Y}]; ok {
			return true
		}
	}
	return false
}

// collides is Collides against the settled set.
func (b *Board) collides(candidate []Cell) bool {
	for _, c := range candidate {
		if c.Y > b.rows || b.settled.Has(b.key(c.X, c.Y)) {
			return true
		}
	}
	return false
}

func (b *Board) land() {
	for _, c := range b.falling {
		b.settled.Put(b.key(c.X, c.Y), c.Color)
	}
	b.falling = nil
	b.lastCleared = b.ClearCompletedLines()
	b.isBlockFalling = false
}

func (b *Board) fallingAt(x, y int) bool {
	for _, c := range b.falling {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

func (b *Board) key(x, y int) int { return y*b.columns + x }

func (b *Board) unkey(k int) (x, y int) { return k % b.columns, k / b.columns }

func transpose(m [][]bool) {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
}

func reverseRows(m [][]bool) {
	for _, row := range m {
		slices.Reverse(row)
	}
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
