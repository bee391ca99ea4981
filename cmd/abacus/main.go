// Package main provides the abacus CLI, a single-user task-progress
// estimator: tasks are made of weighted acceptance criteria, work is logged
// in days, and simple story-point arithmetic projects whether each task is
// on track.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status: 0 on success,
// 2 when the environment (config, store, filesystem) failed, 1 for user
// errors such as unknown tasks or invalid values.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var sys sysError
	if errors.As(err, &sys) {
		return exitSysError
	}
	return exitUserError
}
