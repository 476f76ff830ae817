package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tetrus/pkg/core/board"
	"github.com/matzehuels/tetrus/pkg/core/piece"
	"github.com/matzehuels/tetrus/pkg/core/render"
	"github.com/matzehuels/tetrus/pkg/observability"
)

// Default grid dimensions.
const (
	DefaultColumns = 10
	DefaultRows    = 22
)

// Landing reasons reported to OnLand hooks.
const (
	ReasonFloor = "floor"
	ReasonBlock = "block"
)

// Options configures a new game.
type Options struct {
	Columns int // grid width (default 10)
	Rows    int // grid height (default 22)

	// Seed fixes the piece sequence. Zero derives a seed from the clock.
	Seed uint64

	// Hooks receives game events. Nil uses observability.Game().
	Hooks observability.GameHooks

	// Now is the clock used for game duration. Nil uses time.Now.
	Now func() time.Time
}

// State summarizes a game. Pieces and Lines are session statistics.
type State struct {
	Over   bool // no further input is accepted
	Paused bool // gravity and movement are suspended
	Quit   bool // the player ended the game
	Pieces int  // pieces spawned
	Lines  int  // rows cleared
}

// Game is one play session. It is not safe for concurrent use.
type Game struct {
	// ID identifies the session in logs and hooks.
	ID string

	board   *board.Board
	rng     *rand.Rand
	seed    uint64
	hooks   observability.GameHooks
	now     func() time.Time
	started time.Time
	state   State
}

// New creates a game and spawns its first piece.
func New(ctx context.Context, opts Options) *Game {
	if opts.Columns == 0 {
		opts.Columns = DefaultColumns
	}
	if opts.Rows == 0 {
		opts.Rows = DefaultRows
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Hooks == nil {
		opts.Hooks = observability.Game()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.Now().UnixNano())
	}

	g := &Game{
		ID:      uuid.NewString(),
		board:   board.New(opts.Columns, opts.Rows),
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		seed:    seed,
		hooks:   opts.Hooks,
		now:     opts.Now,
		started: opts.Now(),
	}
	g.spawn(ctx)
	return g
}

// Seed returns the seed of the piece sequence.
func (g *Game) Seed() uint64 { return g.seed }

// State returns a copy of the game state.
func (g *Game) State() State { return g.state }

// Columns returns the grid width.
func (g *Game) Columns() int { return g.board.Columns() }

// Rows returns the grid height.
func (g *Game) Rows() int { return g.board.Rows() }

// Board returns the board for rendering. Callers must not modify it.
func (g *Game) Board() *board.Board { return g.board }

// Frame projects the current board.
func (g *Game) Frame() render.Frame {
	return render.Project(g.board.Settled(), g.board.Falling(), g.board.Columns(), g.board.Rows())
}

// Elapsed returns the time since the game started.
func (g *Game) Elapsed() time.Duration { return g.now().Sub(g.started) }

// Advance applies one gravity step. It is ignored while the game is
// paused or over.
func (g *Game) Advance(ctx context.Context) {
	if g.state.Over || g.state.Paused {
		return
	}
	g.descend(ctx)
}

// Apply handles one player action. Quit is always accepted; everything
// else is ignored once the game is over, and only Pause is accepted while
// paused.
func (g *Game) Apply(ctx context.Context, a Action) {
	if a == Quit {
		g.state.Quit = true
		g.end(ctx)
		return
	}
	if g.state.Over {
		return
	}
	if a == Pause {
		g.state.Paused = !g.state.Paused
		return
	}
	if g.state.Paused {
		return
	}

	switch a {
	case Left:
		g.board.TranslateHorizontal(board.Left)
	case Right:
		g.board.TranslateHorizontal(board.Right)
	case Down:
		g.descend(ctx)
	case RotateCW:
		g.rotate(board.Clockwise)
	case RotateCCW:
		g.rotate(board.CounterClockwise)
	case HardDrop:
		if _, err := g.board.HardDrop(); board.IsLanded(err) {
			g.landed(ctx, err)
		}
	}
}

func (g *Game) descend(ctx context.Context) {
	if !g.board.IsBlockFalling() {
		g.spawn(ctx)
		return
	}
	if err := g.board.Tick(); board.IsLanded(err) {
		g.landed(ctx, err)
	}
}

// rotate drops blocked rotations; the piece stays where it is.
func (g *Game) rotate(r board.Rotation) {
	_ = g.board.Rotate(r)
}

func (g *Game) landed(ctx context.Context, err error) {
	reason := ReasonBlock
	if errors.Is(err, board.ErrLandedOnBoundary) {
		reason = ReasonFloor
	}
	cleared := g.board.LastCleared()
	g.state.Lines += cleared
	g.hooks.OnLand(ctx, g.ID, reason, cleared)
	g.spawn(ctx)
}

func (g *Game) spawn(ctx context.Context) {
	kind := piece.Random(g.rng)
	if err := g.board.Spawn(kind); err != nil {
		g.end(ctx)
		return
	}
	g.state.Pieces++
	g.hooks.OnSpawn(ctx, g.ID, kind.String())
}

func (g *Game) end(ctx context.Context) {
	if g.state.Over {
		return
	}
	g.state.Over = true
	g.state.Paused = false
	g.hooks.OnGameOver(ctx, g.ID, g.state.Pieces, g.state.Lines, g.Elapsed())
}
