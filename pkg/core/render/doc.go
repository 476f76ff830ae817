// Package render projects board state into a printable frame.
//
// [Project] overlays the settled and falling cell sets onto a dense
// rows x columns buffer of [Glyph] values. It only reads the cells it is
// given and never touches a board. A [Formatter] turns a [Frame] into a
// colored multi-line string centered for a given terminal width, with the
// game title on the first line.
//
//	frame := render.Project(b.Settled(), b.Falling(), b.Columns(), b.Rows())
//	fmt.Println(render.NewFormatter(nil).Format(frame, termWidth))
package render
