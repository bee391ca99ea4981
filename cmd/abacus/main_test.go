package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "no error", err: nil, want: exitSuccess},
		{name: "user error", err: types.ErrTaskNotFound, want: exitUserError},
		{name: "system error", err: sysError{err: assert.AnError}, want: exitSysError},
		{name: "wrapped system error", err: fmt.Errorf("open store: %w", sysError{err: assert.AnError}), want: exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
