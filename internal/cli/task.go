package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/usecase"
)

// newAddCommand creates the add command.
func newAddCommand(d *deps) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a task to the list.

The task belongs to today unless --date is given.
Empty text is ignored.

Examples:
  # Add a task for today
  todo add Buy milk

  # Add a task for a specific day
  todo add --date 2024-01-05 "Pay rent"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
				Date: date,
			})
			if err != nil {
				return err
			}
			if !out.Added {
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the task (YYYY-MM-DD, default today)")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(d *deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks grouped by date",
		Long: `List tasks grouped by date, earliest date first.

Formats:
  text  sections labelled Today, Tomorrow or the weekday (default)
  json  the stored task array
  yaml  the grouped view`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "text", "":
				return printTasksText(w, out)
			case "json":
				return printTasksJSON(w, out.Tasks)
			case "yaml":
				return printTasksYAML(w, out)
			}
			return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

// newToggleCommand creates the toggle command.
func newToggleCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task complete or incomplete",
		Long: `Flip the completion flag of a task.

Examples:
  todo toggle 1704270600000
  todo done "#1704270600000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			c, err := d.container()
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: taskID})
			if errors.Is(err, domain.ErrTaskNotFound) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "task #%d not found\n", taskID)
				return nil
			}
			if err != nil {
				return err
			}

			verb := "Reopened"
			if out.Task.Completed {
				verb = "Completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d\n", verb, out.Task.ID)
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task from the list.

Examples:
  # Delete task by ID
  todo rm 1704270600000

  # Delete task using # prefix
  todo rm "#1704270600000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			c, err := d.container()
			if err != nil {
				return err
			}

			_, err = c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if errors.Is(err, domain.ErrTaskNotFound) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "task #%d not found\n", taskID)
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", taskID)
			return nil
		},
	}

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many tasks are completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Summary.String())
			return nil
		},
	}
}

// parseTaskID parses a task ID, accepting an optional leading #.
func parseTaskID(s string) (int64, error) {
	s = strings.TrimPrefix(s, "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("task ID must be positive")
	}
	return id, nil
}
