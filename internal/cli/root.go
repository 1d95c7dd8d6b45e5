// Package cli provides the command-line interface for todo.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amanKp27/toDoList/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// ContainerFactory builds the container once global flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// deps hands the lazily built container to subcommands.
type deps struct {
	factory ContainerFactory
	c       *app.Container
	opts    app.Options
}

// container returns the container, building it on first use.
func (d *deps) container() (*app.Container, error) {
	if d.c != nil {
		return d.c, nil
	}
	if d.factory == nil {
		return nil, errors.New("no container factory")
	}
	c, err := d.factory(d.opts)
	if err != nil {
		return nil, err
	}
	d.c = c
	return c, nil
}

func (d *deps) close() error {
	if d.c == nil {
		return nil
	}
	return d.c.Close()
}

// staticDeps wraps an already built container.
func staticDeps(c *app.Container) *deps {
	return &deps{c: c}
}

// NewRootCommand creates the root command for todo.
// The container is built by factory after flag parsing so --config and
// --ephemeral can take effect.
func NewRootCommand(factory ContainerFactory, version string) *cobra.Command {
	d := &deps{factory: factory}
	return newRootCommand(d, version)
}

func newRootCommand(d *deps, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A dated to-do list for the terminal",
		Long: `todo keeps a single list of dated tasks.

Run without arguments to open the interactive list, or use the
subcommands below from scripts.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return d.close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&d.opts.ConfigPath, "config", "", "Config file merged over the global config")
	root.PersistentFlags().BoolVar(&d.opts.Ephemeral, "ephemeral", false, "Keep tasks in memory only (nothing is saved)")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	taskCmds := []*cobra.Command{
		newAddCommand(d),
		newListCommand(d),
		newToggleCommand(d),
		newRmCommand(d),
		newStatsCommand(d),
		newTUICommand(d),
	}
	for _, cmd := range taskCmds {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	configCmd := newConfigCommand(d)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}
