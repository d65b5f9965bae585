package runperf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

const DefaultShell = "/bin/sh"

// An Executor runs a shell command line and returns its combined
// stdout and stderr.
type Executor interface {
	// Run returns the output captured so far together with an *ExitError
	// when the command exits with a non-zero status.
	Run(ctx context.Context, command string) (out string, err error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
}

// ShellExecutor runs commands through `Shell -c`.
type ShellExecutor struct {
	Shell string
}

func (s *ShellExecutor) Run(ctx context.Context, command string) (string, error) {
	shell := s.Shell
	if shell == "" {
		shell = DefaultShell
	}
	c := exec.CommandContext(ctx, shell, "-c", command)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = &out
	err := c.Run()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && ctx.Err() == nil {
			return out.String(), &ExitError{Command: command, Code: ee.ExitCode()}
		}
		return "", fmt.Errorf("%s -c %s: %w", shell, command, err)
	}
	return out.String(), nil
}
