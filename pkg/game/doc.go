// Package game drives a board through one play session.
//
// A [Game] owns a board and a seeded random source. Callers feed it
// gravity ticks with [Game.Advance] and player input with [Game.Apply];
// the game spawns the next piece whenever one lands and ends when a new
// piece cannot be placed. Events are reported through
// observability.GameHooks.
//
// The package has no notion of terminals, keys or timers. Mapping keys to
// an [Action] and scheduling Advance calls is the caller's job.
package game
