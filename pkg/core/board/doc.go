// Package board implements the grid engine: piece insertion, movement,
// rotation, gravity, collision detection and line clearing.
//
// A [Board] never materializes a dense grid. It keeps two sparse sets of
// colored coordinates:
//
//   - settled: cells left behind by pieces that have landed
//   - falling: cells of the piece currently under player control
//
// Every mutating operation builds a full candidate set for the falling
// piece and either accepts it atomically or leaves the board untouched.
//
// # Errors
//
// Expected outcomes are reported as sentinel errors, compared with
// errors.Is:
//
//   - [ErrInsertionBlocked]: a new piece cannot be placed (game over)
//   - [ErrRotationBlocked]: a rotation would leave the grid or overlap
//   - [ErrLandedOnBoundary], [ErrLandedOnBlock]: the piece has landed;
//     use [IsLanded] when the reason does not matter
//
// Horizontal movement never fails; a blocked move is a silent no-op.
//
// # Bounds
//
// The shared collision predicate flags cells with y > rows, one past the
// last valid row, while descent drops any candidate with y >= rows. The
// two bounds differ on purpose and must not be unified.
//
// A Board is not safe for concurrent use.
package board
