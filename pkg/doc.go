// Package pkg holds the libraries behind the tetrus terminal game.
//
// # Overview
//
// The game is split into a pure engine and the pieces that connect it to
// a terminal:
//
//  1. [core/piece] - the seven tetromino shapes and their colors
//  2. [core/board] - the grid: spawning, movement, rotation, landing, line clears
//  3. [core/render] - projection of a board into glyph frames and styled text
//  4. [game] - a play session driven by gravity ticks and player actions
//  5. [config] - the TOML config file and key bindings
//  6. [audio] - optional sound cues
//  7. [observability] - hooks for game events
//
// # Data Flow
//
//	tick / key press
//	       ↓
//	  [game] package (Advance / Apply)
//	       ↓
//	  [core/board] package (Tick, TranslateHorizontal, Rotate, Spawn)
//	       ↓
//	  [core/render] package (Project, Formatter.Format)
//	       ↓
//	  terminal
//
// # Quick Start
//
//	g := game.New(ctx, game.Options{Seed: 42})
//	g.Apply(ctx, game.Left)
//	g.Advance(ctx)
//	fmt.Println(g.Frame())
//
// The engine in core is synchronous and has no I/O; everything that
// touches the terminal lives in internal/cli.
package pkg
