package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tetrus/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.PersistentFlags().StringVarP(&path, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/tetrus/config.toml)")

	cmd.AddCommand(c.configShowCommand(&path))
	cmd.AddCommand(c.configInitCommand(&path))
	cmd.AddCommand(c.configPathCommand(&path))

	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*path)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand(path *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := configPath(*path)
			if err != nil {
				return err
			}
			if err := config.WriteFile(target, config.Default(), force); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("wrote config", "path", target)
			printSuccess("Wrote default config")
			printFile(target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := configPath(*path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func configPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return p, nil
}
