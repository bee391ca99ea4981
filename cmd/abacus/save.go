// Save command forces an immediate persist of the current state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the current state now",
	Long: `Save writes the whole state tree to the store immediately. Mutating
commands already persist on their own; save exists to force a write, for
example after a previous save warned that the store was unavailable.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	if err := s.Flush(); err != nil {
		return sysError{err: fmt.Errorf("save state: %w", err)}
	}
	fmt.Println("State saved.")
	return nil
}
