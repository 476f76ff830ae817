package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tetrus/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "tetrus"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out is the logger's destination while no game owns the terminal.
	out io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Invoked without a subcommand it starts a game with the play flags.
func (c *CLI) RootCommand() *cobra.Command {
	var opts playOpts

	root := &cobra.Command{
		Use:          appName,
		Short:        "Tetrus is a falling-block puzzle game for the terminal",
		Long:         `Tetrus is a falling-block puzzle game for the terminal. Steer and rotate the falling pieces, complete rows to clear them, and don't let the stack reach the top.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("tetrus", buildinfo.Fields()...)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	addPlayFlags(root, &opts)

	// Register all subcommands
	root.AddCommand(c.playCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
