// Criteria command lists or replaces a task's acceptance criteria.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

var criteriaRows []string

var criteriaCmd = &cobra.Command{
	Use:   "criteria <task>",
	Short: "List or replace a task's acceptance criteria",
	Long: `Criteria lists the task's acceptance criteria, or replaces the whole
set when --row flags are given. Each --row has the form "text|points" or
"text|points|done". Rows with empty text and zero points are dropped.
Replacing with an identical set changes nothing.

Example:
  abacus criteria 0192f3a1
  abacus criteria 0192f3a1 --row "Parses sample files|3" --row "Docs updated|1|done"`,
	Args: cobra.ExactArgs(1),
	RunE: runCriteria,
}

func init() {
	criteriaCmd.Flags().StringArrayVar(&criteriaRows, "row", nil, `criterion row "text|points[|done]"; replaces the full set`)
}

func runCriteria(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("row") {
		criteria, err := parseCriteriaRows(criteriaRows)
		if err != nil {
			return err
		}
		if err := s.ReplaceCriteria(t.ID, criteria); err != nil {
			return fmt.Errorf("replace criteria: %w", err)
		}
		t, err = s.Task(t.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Criteria for %q replaced (%d row(s))\n", t.Title, len(t.Criteria))
	}

	if flagJSON {
		m, _ := s.TaskMetrics(t.ID)
		return printJSON(newTaskJSONView(t, m))
	}

	if len(t.Criteria) == 0 {
		fmt.Printf("%q has no acceptance criteria.\n", t.Title)
		return nil
	}
	for i, c := range t.Criteria {
		mark := " "
		if c.Done {
			mark = "x"
		}
		fmt.Printf("%2d. [%s] %s (%.1f SP)\n", i+1, mark, c.Text, c.Points)
	}
	return nil
}

// parseCriteriaRows parses "text|points[|done]" rows. The third field
// accepts done/todo or any strconv boolean.
func parseCriteriaRows(rows []string) ([]types.Criterion, error) {
	criteria := make([]types.Criterion, 0, len(rows))
	for _, row := range rows {
		parts := strings.Split(row, "|")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid row %q: want \"text|points[|done]\"", row)
		}

		points, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid points in row %q: %v", row, err)
		}
		if points < 0 {
			return nil, fmt.Errorf("invalid row %q: %w", row, types.ErrNegativePoints)
		}

		c := types.Criterion{Text: strings.TrimSpace(parts[0]), Points: points}
		if len(parts) == 3 {
			switch v := strings.TrimSpace(strings.ToLower(parts[2])); v {
			case "done", "x":
				c.Done = true
			case "todo", "":
				c.Done = false
			default:
				b, err := strconv.ParseBool(v)
				if err != nil {
					return nil, fmt.Errorf("invalid done flag in row %q", row)
				}
				c.Done = b
			}
		}
		criteria = append(criteria, c)
	}
	return criteria, nil
}
