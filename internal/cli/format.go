package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/usecase"
)

const emptyListMessage = "No tasks yet. Add one!"

// checkbox renders the completion flag.
func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// printTasksText writes the header line followed by one section per date.
func printTasksText(w io.Writer, out *usecase.ListTasksOutput) error {
	_, _ = fmt.Fprintln(w, out.Summary.String())

	if len(out.Sections) == 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, emptyListMessage)
		return nil
	}

	for _, section := range out.Sections {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s (%s)\n", section.Label, section.Date)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, task := range section.Tasks {
			_, _ = fmt.Fprintf(tw, "  %s\t%d\t%s\n", checkbox(task.Completed), task.ID, task.Text)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// printTasksJSON writes the stored array form, indented.
func printTasksJSON(w io.Writer, tasks domain.TaskList) error {
	data, err := domain.EncodeTasks(tasks)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// yamlListing is the document written by list --format yaml.
type yamlListing struct {
	Summary  string                `yaml:"summary"`
	Sections []usecase.TaskSection `yaml:"sections"`
}

// printTasksYAML writes the grouped view.
func printTasksYAML(w io.Writer, out *usecase.ListTasksOutput) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlListing{
		Summary:  out.Summary.String(),
		Sections: out.Sections,
	}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
