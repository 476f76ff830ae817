package piece

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Kind identifies one of the seven catalog shapes.
type Kind int

const (
	Square Kind = iota
	T
	Line
	L
	J
	Z
	S
)

// Kinds lists every catalog kind in declaration order.
var Kinds = []Kind{Square, T, Line, L, J, Z, S}

// Color is a lipgloss-compatible color string: an ANSI index ("11") or a
// hex value ("#FF7F00").
type Color string

// Piece colors.
const (
	Yellow  Color = "11"
	Magenta Color = "13"
	Cyan    Color = "14"
	Orange  Color = "#FF7F00"
	Blue    Color = "12"
	Red     Color = "9"
	Green   Color = "10"
)

// Pattern is a row-major filled/empty matrix, rows top to bottom.
type Pattern [][]bool

// Local is a filled pattern cell relative to the pattern's top-left origin.
type Local struct {
	X, Y  int
	Color Color
}

type shape struct {
	rows  []string
	color Color
}

// catalog holds the shape table; 'x' marks a filled cell.
var catalog = map[Kind]shape{
	Square: {rows: []string{"xx", "xx"}, color: Yellow},
	T:      {rows: []string{".x.", "xxx"}, color: Magenta},
	Line:   {rows: []string{"xxxx"}, color: Cyan},
	L:      {rows: []string{"..x", "xxx"}, color: Orange},
	J:      {rows: []string{"x..", "xxx"}, color: Blue},
	Z:      {rows: []string{"xx.", ".xx"}, color: Red},
	S:      {rows: []string{".xx", "xx."}, color: Green},
}

var names = map[Kind]string{
	Square: "square",
	T:      "t",
	Line:   "line",
	L:      "l",
	J:      "j",
	Z:      "z",
	S:      "s",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// ParseKind resolves a kind by name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range names {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind: %q", s)
}

// Shape returns the pattern and color for kind. The pattern is a fresh
// copy; unknown kinds yield a nil pattern.
func Shape(kind Kind) (Pattern, Color) {
	s, ok := catalog[kind]
	if !ok {
		return nil, ""
	}
	p := make(Pattern, len(s.rows))
	for y, row := range s.rows {
		p[y] = make([]bool, len(row))
		for x, r := range row {
			p[y][x] = r == 'x'
		}
	}
	return p, s.color
}

// Width returns the number of pattern columns for kind.
func Width(kind Kind) int {
	s, ok := catalog[kind]
	if !ok || len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Coordinates returns the filled cells of kind's pattern in row-major
// order.
func Coordinates(kind Kind) []Local {
	p, color := Shape(kind)
	var out []Local
	for y, row := range p {
		for x, filled := range row {
			if filled {
				out = append(out, Local{X: x, Y: y, Color: color})
			}
		}
	}
	return out
}

// Random picks a kind uniformly. Repeats are allowed. A nil r uses the
// global generator.
func Random(r *rand.Rand) Kind {
	if r == nil {
		return Kinds[rand.IntN(len(Kinds))]
	}
	return Kinds[r.IntN(len(Kinds))]
}
