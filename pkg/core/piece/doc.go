// Package piece defines the catalog of falling pieces.
//
// The catalog is a fixed table of seven kinds (Square, T, Line, L, J, Z, S).
// Each kind has a constant row-major [Pattern] and a [Color]. Patterns are
// package-level data and are never recomputed; callers receive copies.
//
// # Usage
//
//	kind := piece.Random(rng)
//	for _, c := range piece.Coordinates(kind) {
//	    fmt.Println(c.X, c.Y, c.Color)
//	}
//
// Colors are carried for rendering only; nothing in the game logic reads
// them.
package piece
