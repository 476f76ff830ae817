package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tetrus/pkg/config"
	"github.com/matzehuels/tetrus/pkg/core/render"
	"github.com/matzehuels/tetrus/pkg/game"
)

// Game view styles
var (
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// =============================================================================
// GameModel - Interactive game session
// =============================================================================

// tickMsg fires once per fall interval.
type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// GameModel is the bubbletea model for a game session. Ticks drive
// gravity, key presses are mapped through the configured bindings.
type GameModel struct {
	// ctx is passed to game hooks.
	ctx context.Context

	game     *game.Game
	keys     config.KeyBindings
	interval time.Duration
	format   *render.Formatter
	width    int
}

// NewGameModel creates a model that plays g.
func NewGameModel(ctx context.Context, g *game.Game, keys config.KeyBindings, interval time.Duration, f *render.Formatter) GameModel {
	if f == nil {
		f = render.NewFormatter(nil)
	}
	return GameModel{
		ctx:      ctx,
		game:     g,
		keys:     keys,
		interval: interval,
		format:   f,
	}
}

// Game returns the session being played.
func (m GameModel) Game() *game.Game { return m.game }

// Width returns the last reported terminal width.
func (m GameModel) Width() int { return m.width }

func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Advance(m.ctx)
		if m.game.State().Over {
			return m, tea.Quit
		}
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		action := m.keys.Lookup(msg.String())
		if action == game.None {
			return m, nil
		}
		m.game.Apply(m.ctx, action)
		if m.game.State().Over {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m GameModel) View() string {
	if m.game.State().Over {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.format.Format(m.game.Frame(), m.width))
	b.WriteString("\n\n")

	pad := strings.Repeat(" ", max(0, m.width/2-m.game.Columns()))
	if m.game.State().Paused {
		b.WriteString(pad + pausedStyle.Render("PAUSED"))
		b.WriteString("\n")
	}
	b.WriteString(pad + helpStyle.Render(m.help()))

	return b.String()
}

// help lists the first key bound to each action.
func (m GameModel) help() string {
	var parts []string
	for _, a := range []game.Action{game.Left, game.Right, game.RotateCW, game.HardDrop, game.Pause, game.Quit} {
		keys := m.keys[a.String()]
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keyLabel(keys[0])+" "+actionLabel(a))
	}
	return strings.Join(parts, "  ")
}

func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

func actionLabel(a game.Action) string {
	switch a {
	case game.RotateCW:
		return "rotate"
	case game.HardDrop:
		return "drop"
	}
	return a.String()
}
