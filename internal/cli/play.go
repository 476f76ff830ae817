package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tetrus/pkg/audio"
	"github.com/matzehuels/tetrus/pkg/config"
	"github.com/matzehuels/tetrus/pkg/core/render"
	"github.com/matzehuels/tetrus/pkg/game"
	"github.com/matzehuels/tetrus/pkg/observability"
)

// playOpts holds the command-line flags for the play command.
// Flags that were set on the command line override the config file.
type playOpts struct {
	configPath   string        // config file (default: XDG config dir)
	logFile      string        // log destination while the game runs
	columns      int           // grid width
	rows         int           // grid height
	fallInterval time.Duration // period of automatic descent
	seed         uint64        // piece sequence seed (0 = random)
	sound        bool          // enable sound cues
}

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game",
		Long: `Start a game in the current terminal.

Default keys: ←/→ or h/l move, ↑/x/k rotate clockwise, z rotate
counter-clockwise, ↓/j soft drop, space hard drop, p pause, q/esc quit.
Keys and defaults can be changed in the config file (see "tetrus config").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, &opts)
		},
	}

	addPlayFlags(cmd, &opts)
	return cmd
}

func addPlayFlags(cmd *cobra.Command, opts *playOpts) {
	def := config.Default()
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/tetrus/config.toml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while playing")
	cmd.Flags().IntVar(&opts.columns, "columns", def.Columns, "grid width")
	cmd.Flags().IntVar(&opts.rows, "rows", def.Rows, "grid height")
	cmd.Flags().DurationVar(&opts.fallInterval, "fall-interval", def.Interval(), "time between automatic descents")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "piece sequence seed (0 = random)")
	cmd.Flags().BoolVar(&opts.sound, "sound", def.Sound, "play sound cues")
}

// resolveConfig loads the config file and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *playOpts) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Columns = opts.columns
	}
	if flags.Changed("rows") {
		cfg.Rows = opts.rows
	}
	if flags.Changed("fall-interval") {
		cfg.FallInterval = config.Duration(opts.fallInterval)
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("sound") {
		cfg.Sound = opts.sound
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *CLI) runPlay(cmd *cobra.Command, opts *playOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	hooks := observability.MultiGameHooks{newLogHooks(logger)}
	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			hooks = append(hooks, player)
		}
	}

	observability.SetGameHooks(hooks)
	defer observability.Reset()

	restore, err := c.redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	g := game.New(ctx, game.Options{
		Columns: cfg.Columns,
		Rows:    cfg.Rows,
		Seed:    cfg.Seed,
	})
	logger.Debug("game started", "game", g.ID, "seed", g.Seed(), "columns", cfg.Columns, "rows", cfg.Rows)

	prog := newProgress(logger)
	model := NewGameModel(ctx, g, cfg.Keys, cfg.Interval(), render.NewFormatter(nil))
	final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	restore()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	gm, ok := final.(GameModel)
	if !ok {
		return fmt.Errorf("run game: unexpected model %T", final)
	}
	st := gm.Game().State()
	prog.done(fmt.Sprintf("Game over after %d pieces", st.Pieces))

	if st.Over && !st.Quit {
		fmt.Println(lostBanner(gm.Width()))
	}
	fmt.Println(StyleTitle.Render("Session"))
	fmt.Println(summaryTable(st, gm.Game().Elapsed(), gm.Game().Seed()))
	return nil
}

// redirectLog points the logger at path, or discards output when path is
// empty, until the returned function is called. The function is safe to
// call more than once.
func (c *CLI) redirectLog(path string) (func(), error) {
	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	c.Logger.SetOutput(w)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.Logger.SetOutput(c.out)
			if f != nil {
				_ = f.Close()
			}
		})
	}, nil
}
