// Init command sets up configuration and storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize abacus storage",
	Long:  "Create the configuration and data directories and initialize the storage backend.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and a default config.yaml are created by the root
	// command's pre-run; opening a session creates the data dir and
	// backing store, and the flush writes the initial state document.
	s, err := openSession()
	if err != nil {
		return err
	}
	if err := s.Flush(); err != nil {
		closeSession(s)
		return sysError{err: fmt.Errorf("write initial state: %w", err)}
	}
	closeSession(s)

	fmt.Fprintln(cmd.OutOrStdout(), "Abacus initialized successfully")
	return nil
}
