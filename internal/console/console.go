package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is the interactive line-oriented dialog with the operator.
// Components hold a Console instead of touching os.Stdin/os.Stdout directly,
// so prompt-driven logic can be tested with scripted input.
type Console interface {
	// Prompt writes the label, reads one line, and returns it trimmed.
	Prompt(label string) (string, error)

	// Confirm asks a yes/no question. Empty input yields def, "y"/"yes"
	// (case-insensitive) yields true, and any other answer yields false.
	Confirm(label string, def bool) (bool, error)
}

// Terminal is the Console used in production, reading stdin and writing stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal builds a Terminal over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Stdio returns a Terminal bound to the process standard streams.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// Prompt writes the label and blocks until the operator enters a line.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question with a default for empty input.
func (t *Terminal) Confirm(label string, def bool) (bool, error) {
	answer, err := t.Prompt(label)
	if err != nil {
		return false, err
	}
	return Affirmative(answer, def), nil
}

// Affirmative interprets a trimmed yes/no answer: empty means def,
// "y"/"yes" means yes, anything else means no.
func Affirmative(answer string, def bool) bool {
	switch strings.ToLower(answer) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}
