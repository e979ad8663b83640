package provision

import (
	"errors"
	"fmt"
	"strings"

	"quack/internal/console"
	"quack/internal/execx"
)

// errExit stands in for a failing external command in interactive runs.
var errExit = errors.New("exit status 1")

// fakeRunner answers commands from canned outcomes and records every call.
// Commands are keyed by their full command line; unknown captured commands
// succeed with empty output so tests only script what they care about.
type fakeRunner struct {
	outcomes    map[string]execx.Outcome
	launchErrs  map[string]error
	interErrs   map[string]error
	calls       []string
	interactive []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outcomes:   map[string]execx.Outcome{},
		launchErrs: map[string]error{},
		interErrs:  map[string]error{},
	}
}

func cmdline(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (r *fakeRunner) Run(name string, args ...string) (execx.Outcome, error) {
	key := cmdline(name, args)
	r.calls = append(r.calls, key)
	if err, ok := r.launchErrs[key]; ok {
		return execx.Outcome{}, err
	}
	if out, ok := r.outcomes[key]; ok {
		return out, nil
	}
	return execx.Outcome{Success: true}, nil
}

func (r *fakeRunner) RunInteractive(name string, args ...string) error {
	key := cmdline(name, args)
	r.interactive = append(r.interactive, key)
	return r.interErrs[key]
}

// called reports how many captured calls started with the given prefix.
func (r *fakeRunner) called(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// scriptConsole feeds prompts from a fixed list of answers and records the
// labels shown. Running out of answers is an error, which doubles as the
// escape hatch from the otherwise unbounded prompt loops.
type scriptConsole struct {
	answers []string
	prompts []string
}

func (c *scriptConsole) Prompt(label string) (string, error) {
	c.prompts = append(c.prompts, label)
	if len(c.answers) == 0 {
		return "", fmt.Errorf("no scripted answer for prompt %q", label)
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *scriptConsole) Confirm(label string, def bool) (bool, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return false, err
	}
	return console.Affirmative(answer, def), nil
}

// fakeEnv is an in-memory console.Env.
type fakeEnv struct {
	vars      map[string]string
	goos      string
	downloads string
	unset     []string
}

func newFakeEnv(goos string) *fakeEnv {
	return &fakeEnv{vars: map[string]string{}, goos: goos, downloads: "/tmp/downloads"}
}

func (e *fakeEnv) Get(key string) string { return e.vars[key] }

func (e *fakeEnv) Unset(key string) error {
	delete(e.vars, key)
	e.unset = append(e.unset, key)
	return nil
}

func (e *fakeEnv) OS() string { return e.goos }

func (e *fakeEnv) DownloadsDir() (string, error) { return e.downloads, nil }
