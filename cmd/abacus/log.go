// Log command records worked days against a task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logDays float64

var logCmd = &cobra.Command{
	Use:   "log <task>",
	Short: "Log work on a task",
	Long: `Log adds days to the task's cumulative worked total. The total only
ever increases; negative amounts are rejected.

Example:
  abacus log 0192f3a1                (logs the default half day)
  abacus log 0192f3a1 --days 0.25
  abacus log "Ship the importer" --days 1`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().Float64Var(&logDays, "days", 0.5, "days to add")
}

func runLog(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}
	if err := s.LogWork(t.ID, logDays); err != nil {
		return fmt.Errorf("log work: %w", err)
	}

	updated, err := s.Task(t.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Added %.2f day(s); %q has %.2f days worked\n",
		logDays, updated.Title, updated.DaysWorked)
	return nil
}
