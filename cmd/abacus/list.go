// List command shows all tasks with their verdicts.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List shows every task ordered by title (case-insensitive) with its
completed/total points and risk verdict.

Example:
  abacus list
  abacus list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	tasks := s.Tasks()

	if flagJSON {
		views := make([]taskJSONView, len(tasks))
		for i, t := range tasks {
			m, _ := s.TaskMetrics(t.ID)
			views[i] = newTaskJSONView(t, m)
		}
		return printJSON(views)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Use \"abacus create\" to add one.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tPOINTS\tWORKED\tVERDICT")
	fmt.Fprintln(w, "--\t-----\t------\t------\t-------")
	for _, t := range tasks {
		m, err := s.TaskMetrics(t.ID)
		if err != nil {
			continue
		}
		title := t.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f/%.1f\t%.2f\t%s\n",
			shortID(t.ID),
			title,
			m.CompletedPoints,
			m.TotalPoints,
			t.DaysWorked,
			verdictLabel(m.Verdict),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d task(s), global velocity %.2f SP/day\n",
		len(tasks), s.GlobalVelocity())
	return nil
}
