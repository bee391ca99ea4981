// Points command sets a task's planned story points.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointsPlanned float64

var pointsCmd = &cobra.Command{
	Use:   "points <task>",
	Short: "Set planned story points for a task",
	Long: `Points sets the story points budgeted for the task. The plan, divided
by the effective velocity, gives the planned calendar days.

Example:
  abacus points 0192f3a1 --planned 8`,
	Args: cobra.ExactArgs(1),
	RunE: runPoints,
}

func init() {
	pointsCmd.Flags().Float64Var(&pointsPlanned, "planned", 0, "planned story points (required, >= 0)")
	_ = pointsCmd.MarkFlagRequired("planned")
}

func runPoints(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}
	if err := s.SetPlannedPoints(t.ID, pointsPlanned); err != nil {
		return fmt.Errorf("set planned points: %w", err)
	}

	fmt.Printf("Set planned points for %q to %.2f SP\n", t.Title, pointsPlanned)
	return nil
}
