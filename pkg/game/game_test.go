package game

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/tetrus/pkg/observability"
)

type recordingHooks struct {
	spawns   []string
	lands    []string
	cleared  int
	overs    int
	lastOver struct {
		pieces, lines int
		duration      time.Duration
	}
}

func (h *recordingHooks) OnSpawn(_ context.Context, _ string, kind string) {
	h.spawns = append(h.spawns, kind)
}

func (h *recordingHooks) OnLand(_ context.Context, _ string, reason string, cleared int) {
	h.lands = append(h.lands, reason)
	h.cleared += cleared
}

func (h *recordingHooks) OnGameOver(_ context.Context, _ string, pieces, lines int, d time.Duration) {
	h.overs++
	h.lastOver.pieces, h.lastOver.lines, h.lastOver.duration = pieces, lines, d
}

func newTestGame(t *testing.T, opts Options) (*Game, *recordingHooks) {
	t.Helper()
	h := &recordingHooks{}
	opts.Hooks = h
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return New(context.Background(), opts), h
}

func TestNewSpawnsFirstPiece(t *testing.T) {
	g, h := newTestGame(t, Options{})

	if g.ID == "" {
		t.Error("ID is empty")
	}
	if g.Columns() != DefaultColumns || g.Rows() != DefaultRows {
		t.Errorf("grid = %dx%d, want %dx%d", g.Columns(), g.Rows(), DefaultColumns, DefaultRows)
	}
	if s := g.State(); s.Pieces != 1 || s.Over {
		t.Errorf("State() = %+v, want one piece and not over", s)
	}
	if len(h.spawns) != 1 {
		t.Errorf("OnSpawn called %d times, want 1", len(h.spawns))
	}
	if !g.Board().IsBlockFalling() || len(g.Board().Falling()) != 4 {
		t.Errorf("board should hold one falling piece of 4 cells, got %v", g.Board().Falling())
	}
}

func TestSeedReproducesSequence(t *testing.T) {
	a, ha := newTestGame(t, Options{Seed: 7})
	b, hb := newTestGame(t, Options{Seed: 7})

	for i := 0; i < 10; i++ {
		a.Apply(context.Background(), HardDrop)
		b.Apply(context.Background(), HardDrop)
	}
	if len(ha.spawns) != len(hb.spawns) {
		t.Fatalf("spawn counts differ: %d vs %d", len(ha.spawns), len(hb.spawns))
	}
	for i := range ha.spawns {
		if ha.spawns[i] != hb.spawns[i] {
			t.Fatalf("spawn %d differs: %s vs %s", i, ha.spawns[i], hb.spawns[i])
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Seed() = %d, want 7", a.Seed())
	}
	if a.Frame().String() != b.Frame().String() {
		t.Error("same seed and input produced different boards")
	}
}

func TestAdvanceLandsAndSpawns(t *testing.T) {
	g, h := newTestGame(t, Options{})
	ctx := context.Background()

	for i := 0; i < g.Rows()+1 && g.State().Pieces < 2; i++ {
		g.Advance(ctx)
	}

	if g.State().Pieces != 2 {
		t.Fatalf("Pieces = %d after a full descent, want 2", g.State().Pieces)
	}
	if len(h.lands) != 1 || h.lands[0] != ReasonFloor {
		t.Errorf("lands = %v, want [%s]", h.lands, ReasonFloor)
	}
}

func TestHardDropUntilGameOver(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	g, h := newTestGame(t, Options{Columns: 4, Rows: 4, Now: clock})
	ctx := context.Background()

	for i := 0; i < 200 && !g.State().Over; i++ {
		now = now.Add(time.Second)
		g.Apply(ctx, HardDrop)
	}

	s := g.State()
	if !s.Over {
		t.Fatal("game did not end on a 4x4 grid")
	}
	if s.Quit {
		t.Error("Quit = true for a game that was lost")
	}
	if h.overs != 1 {
		t.Errorf("OnGameOver called %d times, want 1", h.overs)
	}
	if h.lastOver.pieces != s.Pieces || h.lastOver.lines != s.Lines {
		t.Errorf("OnGameOver(%d, %d), state %+v", h.lastOver.pieces, h.lastOver.lines, s)
	}
	if h.lastOver.duration <= 0 {
		t.Errorf("OnGameOver duration = %s, want > 0", h.lastOver.duration)
	}
	if s.Lines != h.cleared {
		t.Errorf("Lines = %d, hooks saw %d", s.Lines, h.cleared)
	}

	before := g.Frame().String()
	g.Apply(ctx, Left)
	g.Apply(ctx, HardDrop)
	g.Advance(ctx)
	if g.Frame().String() != before {
		t.Error("board changed after game over")
	}
}

func TestPause(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	ctx := context.Background()

	g.Apply(ctx, Pause)
	if !g.State().Paused {
		t.Fatal("Paused = false after Pause")
	}

	before := g.Frame().String()
	g.Advance(ctx)
	g.Apply(ctx, Left)
	g.Apply(ctx, HardDrop)
	if g.Frame().String() != before {
		t.Error("board changed while paused")
	}

	g.Apply(ctx, Pause)
	if g.State().Paused {
		t.Fatal("Paused = true after second Pause")
	}
	g.Advance(ctx)
	if g.Frame().String() == before {
		t.Error("gravity did not resume after unpausing")
	}
}

func TestQuit(t *testing.T) {
	g, h := newTestGame(t, Options{})
	ctx := context.Background()

	g.Apply(ctx, Quit)
	g.Apply(ctx, Quit)

	s := g.State()
	if !s.Over || !s.Quit {
		t.Errorf("State() = %+v, want over and quit", s)
	}
	if h.overs != 1 {
		t.Errorf("OnGameOver called %d times, want 1", h.overs)
	}
}

func TestMovementActions(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	ctx := context.Background()

	start := g.Frame().String()
	g.Apply(ctx, Down)
	afterDown := g.Frame().String()
	if afterDown == start {
		t.Error("Down did not move the piece")
	}

	for i := 0; i < g.Columns(); i++ {
		g.Apply(ctx, Left)
	}
	leftmost := g.Frame()
	found := false
	for _, row := range leftmost {
		if row[0].Rune != ' ' && row[0].Rune != '.' {
			found = true
		}
	}
	if !found {
		t.Errorf("piece did not reach the left wall:\n%s", leftmost)
	}

	g.Apply(ctx, RotateCW)
	g.Apply(ctx, RotateCCW)
	g.Apply(ctx, None)
	if g.State().Over {
		t.Error("game ended from movement actions")
	}
}

func TestDefaultHooksFromRegistry(t *testing.T) {
	h := &recordingHooks{}
	observability.SetGameHooks(h)
	defer observability.Reset()

	_ = New(context.Background(), Options{Seed: 1})
	if len(h.spawns) != 1 {
		t.Errorf("registry hooks saw %d spawns, want 1", len(h.spawns))
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("none"); err == nil {
		t.Error("ParseAction(\"none\") expected error")
	}
	if _, err := ParseAction("teleport"); err == nil {
		t.Error("ParseAction(\"teleport\") expected error")
	}
	if Action(99).String() != "action(99)" {
		t.Errorf("String() = %q", Action(99).String())
	}
}
