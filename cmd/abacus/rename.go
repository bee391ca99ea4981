// Rename command changes a task's title.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameTitle string

var renameCmd = &cobra.Command{
	Use:   "rename <task>",
	Short: "Rename a task",
	Long: `Rename changes the task's title in place. Renaming to a title another
task already uses fails and leaves the current title unchanged; renaming to
the current title is a no-op.

Example:
  abacus rename 0192f3a1 --title "Ship the importer v2"`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVar(&renameTitle, "title", "", "new title (required)")
	_ = renameCmd.MarkFlagRequired("title")
}

func runRename(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}
	if err := s.RenameTask(t.ID, renameTitle); err != nil {
		return fmt.Errorf("rename task: %w", err)
	}

	renamed, err := s.Task(t.ID)
	if err != nil {
		return err
	}
	if flagJSON {
		m, _ := s.TaskMetrics(renamed.ID)
		return printJSON(newTaskJSONView(renamed, m))
	}
	fmt.Printf("Renamed task %s to %q\n", shortID(renamed.ID), renamed.Title)
	return nil
}
