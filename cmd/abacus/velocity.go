// Velocity command adjusts the global velocity or a per-task override.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	velocityGlobal   float64
	velocityOverride float64
)

var velocityCmd = &cobra.Command{
	Use:   "velocity [task]",
	Short: "Set the global velocity or a per-task override",
	Long: `Velocity adjusts work rates in story points per day.

With --global, the session-wide velocity changes (must be positive).
With a task argument and --override, that task gets its own velocity; an
override of 0 or less clears it, falling back to the global value.

Example:
  abacus velocity --global 2.2
  abacus velocity 0192f3a1 --override 1.5
  abacus velocity 0192f3a1 --override 0      (clear the override)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVelocity,
}

func init() {
	velocityCmd.Flags().Float64Var(&velocityGlobal, "global", 0, "global velocity in SP/day (> 0)")
	velocityCmd.Flags().Float64Var(&velocityOverride, "override", 0, "per-task velocity in SP/day (<= 0 clears)")
}

func runVelocity(cmd *cobra.Command, args []string) error {
	globalSet := cmd.Flags().Changed("global")
	overrideSet := cmd.Flags().Changed("override")

	if globalSet == overrideSet {
		return fmt.Errorf("provide exactly one of --global or --override")
	}
	if overrideSet && len(args) == 0 {
		return fmt.Errorf("--override requires a task argument")
	}
	if globalSet && len(args) > 0 {
		return fmt.Errorf("--global does not take a task argument")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	if globalSet {
		if err := s.SetGlobalVelocity(velocityGlobal); err != nil {
			return fmt.Errorf("set global velocity: %w", err)
		}
		fmt.Printf("Global velocity set to %.2f SP/day\n", velocityGlobal)
		return nil
	}

	t, err := resolveTask(s, args[0])
	if err != nil {
		return err
	}
	if err := s.SetVelocityOverride(t.ID, velocityOverride); err != nil {
		return fmt.Errorf("set velocity override: %w", err)
	}

	if velocityOverride <= 0 {
		fmt.Printf("Cleared velocity override for %q\n", t.Title)
	} else {
		fmt.Printf("Velocity override for %q set to %.2f SP/day\n", t.Title, velocityOverride)
	}
	return nil
}
