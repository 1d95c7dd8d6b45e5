package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/amanKp27/toDoList/internal/app"
	"github.com/amanKp27/toDoList/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `todo` without arguments.
func newTUICommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI runs the bubbletea program until the user quits.
func launchTUI(c *app.Container) error {
	opts := []tea.ProgramOption{}
	if c.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(tui.New(c), opts...)
	_, err := p.Run()
	return err
}
