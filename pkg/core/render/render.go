package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tetrus/pkg/core/board"
	"github.com/matzehuels/tetrus/pkg/core/piece"
)

// Glyph runes.
const (
	Blank   = ' '
	Filler  = '.'
	Filled  = '■'
	Outline = '□'
)

// Title is the decorative heading printed above the board.
const Title = "TETRUS"

// titleColors colors Title letter by letter.
var titleColors = []piece.Color{piece.Red, piece.Orange, piece.Yellow, piece.Green, piece.Cyan, piece.Magenta}

// Glyph is one display cell. Color is empty for background glyphs.
type Glyph struct {
	Rune  rune
	Color piece.Color
}

// Frame is a rows x columns glyph buffer, indexed [y][x].
type Frame [][]Glyph

// Project builds a frame from settled and falling cells. Row 0 is blank,
// the rest is filler; settled cells are drawn filled and falling cells are
// drawn as outlines on top. Cells outside the grid are skipped.
func Project(settled, falling []board.Cell, columns, rows int) Frame {
	columns, rows = max(columns, 0), max(rows, 0)
	f := make(Frame, rows)
	for y := range f {
		bg := Glyph{Rune: Filler}
		if y == 0 {
			bg = Glyph{Rune: Blank}
		}
		f[y] = make([]Glyph, columns)
		for x := range f[y] {
			f[y][x] = bg
		}
	}

	overlay := func(cells []board.Cell, r rune) {
		for _, c := range cells {
			if c.X < 0 || c.X >= columns || c.Y < 0 || c.Y >= rows {
				continue
			}
			f[c.Y][c.X] = Glyph{Rune: r, Color: c.Color}
		}
	}
	overlay(settled, Filled)
	overlay(falling, Outline)
	return f
}

// Columns returns the frame width.
func (f Frame) Columns() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// String renders the frame without color or padding, one line per row,
// each glyph preceded by a space.
func (f Frame) String() string {
	var b strings.Builder
	for y, row := range f {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, g := range row {
			b.WriteByte(' ')
			b.WriteRune(g.Rune)
		}
	}
	return b.String()
}

// Formatter renders frames with lipgloss colors.
type Formatter struct {
	r *lipgloss.Renderer
}

// NewFormatter creates a formatter. A nil renderer uses the lipgloss
// default renderer, which detects color support on stdout.
func NewFormatter(r *lipgloss.Renderer) *Formatter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Formatter{r: r}
}

// Title returns the colored title, left-padded to sit near the middle of
// a terminal termWidth cells wide.
func (fm *Formatter) Title(termWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", max(termWidth/2-3, 0)))
	for i, r := range Title {
		b.WriteString(fm.paint(string(r), titleColors[i%len(titleColors)]))
	}
	return b.String()
}

// Format renders the title followed by the frame, each row left-padded by
// termWidth/2 - columns. Negative padding is treated as zero.
func (fm *Formatter) Format(f Frame, termWidth int) string {
	pad := strings.Repeat(" ", max(termWidth/2-f.Columns(), 0))

	lines := make([]string, 0, len(f)+1)
	lines = append(lines, fm.Title(termWidth))
	for _, row := range f {
		var b strings.Builder
		b.WriteString(pad)
		for _, g := range row {
			b.WriteByte(' ')
			b.WriteString(fm.paint(string(g.Rune), g.Color))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (fm *Formatter) paint(s string, c piece.Color) string {
	if c == "" {
		return s
	}
	return fm.r.NewStyle().Foreground(lipgloss.Color(string(c))).Render(s)
}
