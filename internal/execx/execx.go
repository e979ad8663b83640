package execx

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"

	"quack/internal/logger"
)

// Outcome is the result of one external command invocation.
// Success reflects the process exit status; Stdout and Stderr hold the captured
// streams with surrounding whitespace trimmed.
type Outcome struct {
	Success bool
	Stdout  string
	Stderr  string
}

// Runner abstracts external process invocation so that every component built on
// top of it can be tested against canned outcomes instead of real tools.
//
// Run captures output. A nonzero exit is a normal, representable outcome
// (Success=false), not an error; the returned error is non-nil only when the
// process could not be launched at all (binary missing, exec failure).
//
// RunInteractive inherits the terminal, for commands that drive their own
// dialog with the operator (browser login, package manager UIs).
type Runner interface {
	Run(name string, args ...string) (Outcome, error)
	RunInteractive(name string, args ...string) error
}

// System is the Runner used in production. Every call spawns exactly one
// external process, synchronously, blocking until it exits.
type System struct{}

// Run executes the command and captures stdout/stderr separately.
func (System) Run(name string, args ...string) (Outcome, error) {
	logger.Debug("[DEBUG] Running command: %s %s\n", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Outcome{
		Success: err == nil,
		Stdout:  strings.TrimSpace(stdout.String()),
		Stderr:  strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The command ran and failed: a normal outcome, not a launch error.
			return out, nil
		}
		// Launch failure (binary missing, exec error).
		return Outcome{}, err
	}
	return out, nil
}

// RunInteractive executes the command attached to the operator's terminal.
func (System) RunInteractive(name string, args ...string) error {
	logger.Debug("[DEBUG] Running interactive command: %s %s\n", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
