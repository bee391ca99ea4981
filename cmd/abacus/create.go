// Create command adds a new task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createTitle string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	Long: `Create adds a task with the given title and default fields: 3 planned
story points, no work logged, no velocity override, no criteria.

Titles are unique; creating a second task with an existing title fails.
An empty title becomes "Untitled Task".

Example:
  abacus create --title "Ship the importer"
  abacus create --title "Fix flaky sync" --json`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "title for the task (required)")
	_ = createCmd.MarkFlagRequired("title")
}

func runCreate(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := s.CreateTask(createTitle)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	if flagJSON {
		m, _ := s.TaskMetrics(t.ID)
		return printJSON(newTaskJSONView(t, m))
	}
	fmt.Printf("Created task %s: %q\n", shortID(t.ID), t.Title)
	return nil
}
