// Delete command removes a task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <task>",
	Short: "Delete a task",
	Long: `Delete removes the task immediately. There is no soft delete and no
undo; the task and its criteria are gone.

Example:
  abacus delete 0192f3a1
  abacus delete "Ship the importer"`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteTask(t.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	fmt.Printf("Deleted task %s: %q\n", shortID(t.ID), t.Title)
	return nil
}
