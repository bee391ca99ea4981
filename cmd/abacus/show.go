// Show command displays one task with full metrics.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <task>",
	Short: "Show a task and its derived metrics",
	Long: `Show displays the task's fields, its acceptance criteria, and the
derived metrics: total/completed/incomplete story points, planned and
required days at the effective velocity, remaining time, and the risk
verdict.

Example:
  abacus show 0192f3a1
  abacus show "Ship the importer" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}
	m, err := s.TaskMetrics(t.ID)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newTaskJSONView(t, m))
	}

	fmt.Printf("Task:    %s\n", t.Title)
	fmt.Printf("ID:      %s\n", t.ID)
	fmt.Printf("Planned: %.2f SP   Worked: %.2f days", t.PlannedPoints, t.DaysWorked)
	if t.VelocityOverride != nil {
		fmt.Printf("   Velocity override: %.2f SP/day", *t.VelocityOverride)
	}
	fmt.Println()

	if len(t.Criteria) == 0 {
		fmt.Println("\nNo acceptance criteria.")
	} else {
		fmt.Println("\nAcceptance criteria:")
		for i, c := range t.Criteria {
			mark := " "
			if c.Done {
				mark = "x"
			}
			fmt.Printf("  %2d. [%s] %s (%.1f SP)\n", i+1, mark, c.Text, c.Points)
		}
	}

	fmt.Println("\nMetrics:")
	fmt.Printf("  Total SP:       %.2f\n", m.TotalPoints)
	fmt.Printf("  Completed SP:   %.2f\n", m.CompletedPoints)
	fmt.Printf("  Incomplete SP:  %.2f\n", m.IncompletePoints)
	fmt.Printf("  Velocity:       %.2f SP/day\n", m.EffectiveVelocity)
	fmt.Printf("  Required days:  %s\n", formatDays(m.RequiredDays))
	fmt.Printf("  Planned days:   %.2f\n", m.PlannedDays)
	fmt.Printf("  Remaining time: %.2f days\n", m.RemainingTime)

	switch m.Verdict {
	case types.VerdictUndetermined:
		fmt.Println("\nVelocity is 0. Set a positive velocity to estimate remaining days.")
	case types.VerdictAtRisk:
		fmt.Printf("\nRisk: remaining time (%.2f days) < required (%s days).\n",
			m.RemainingTime, formatDays(m.RequiredDays))
	default:
		fmt.Printf("\nOn track: remaining time (%.2f days) >= required (%s days).\n",
			m.RemainingTime, formatDays(m.RequiredDays))
	}
	return nil
}
