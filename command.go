package runperf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

var errEmptyCommand = errors.New("empty command")

// BuildCommand returns the shell command line that times command with
// `time -p`, discarding the command's own output. When user, host and venv
// are all given the line is wrapped in an ssh call that sources venv on the
// remote host first. If any of the three is missing the command runs locally.
//
// Only '&' is escaped for the remote form; other shell metacharacters are
// passed through as is.
func BuildCommand(command, user, host, venv string) string {
	cmd := "time -p " + command + " > /dev/null 2>&1"
	if user == "" || host == "" || venv == "" {
		return cmd
	}
	cmd = strings.ReplaceAll(cmd, "&", `\&`)
	return fmt.Sprintf(`ssh %s@%s "bash -c '. %s && %s'"`, user, host, venv, cmd)
}

// Remote reports whether the invocation runs over ssh.
func (inv *Invocation) Remote() bool {
	return inv.User != "" && inv.Host != "" && inv.Venv != ""
}

// Partial reports whether some, but not all, of the ssh parameters are set.
// Such an invocation runs locally.
func (inv *Invocation) Partial() bool {
	if inv.Remote() {
		return false
	}
	return inv.User != "" || inv.Host != "" || inv.Venv != ""
}

func (inv *Invocation) ShellCommand() string {
	return BuildCommand(inv.Command, inv.User, inv.Host, inv.Venv)
}

// Validate checks the invocation before anything is run.
func (inv *Invocation) Validate() error {
	if inv.Loop < 1 {
		return fmt.Errorf("loop count must be at least 1, got %d", inv.Loop)
	}
	if strings.TrimSpace(inv.Command) == "" {
		return errEmptyCommand
	}
	return nil
}

// CheckQuoting reports quoting that a POSIX word splitter cannot tokenize.
// The shell may still accept such a command ($'...' strings, for example),
// so callers only warn about it.
func (inv *Invocation) CheckQuoting() error {
	if _, err := shlex.Split(inv.Command); err != nil {
		return fmt.Errorf("tokenize command %q: %w", inv.Command, err)
	}
	return nil
}
