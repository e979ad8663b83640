package provision

import (
	"quack/internal/config"
	"quack/internal/console"
	"quack/internal/execx"
)

// SessionState is the data the workflow accumulates over one run. It lives for
// the lifetime of the process only; nothing is persisted between runs, and the
// next invocation re-derives everything by probing the external tools.
type SessionState struct {
	Name       string
	Visibility Visibility
	URL        string
	Linked     bool
}

// Summary is the all-success result reported to the operator.
type Summary = SessionState

// Workflow sequences the provisioning stages strictly in order:
// availability, authentication, input collection, creation, linking, scaffold.
// Each stage's output is input to the next; the first error halts the run.
type Workflow struct {
	tool     *ToolChecker
	auth     *AuthManager
	input    *Collector
	creator  *Creator
	linker   *Linker
	scaffold *Scaffolder
}

// New wires a Workflow over the injected capabilities. dir is the working copy
// the scaffold files are written into (the current directory in production).
func New(cfg config.Config, run execx.Runner, con console.Console, env console.Env, dir string) *Workflow {
	def := VisibilityPublic
	if v, ok := ParseVisibility(cfg.Defaults.Visibility); ok {
		def = v
	}
	return &Workflow{
		tool:     NewToolChecker(run, con, env, cfg.GitHub),
		auth:     NewAuthManager(run, env, cfg.GitHub),
		input:    NewCollector(con, def),
		creator:  NewCreator(run),
		linker:   NewLinker(run, con, cfg.Defaults.Remote),
		scaffold: NewScaffolder(cfg.Scaffold, dir),
	}
}

// Run drives the stages top to bottom and returns the summary of what was
// done. Any stage error is returned as-is; the caller is the only place that
// turns it into a printed message and an exit code.
func (w *Workflow) Run() (*Summary, error) {
	if err := w.tool.EnsureInstalled(); err != nil {
		return nil, err
	}
	if err := w.auth.EnsureAuthenticated(); err != nil {
		return nil, err
	}

	state := &SessionState{}
	name, visibility, err := w.input.Collect()
	if err != nil {
		return nil, err
	}
	state.Name, state.Visibility = name, visibility

	url, err := w.creator.Create(name, visibility)
	if err != nil {
		return nil, err
	}
	state.URL = url

	outcome, err := w.linker.Link(url)
	if err != nil {
		return nil, err
	}
	state.Linked = outcome == Linked

	if err := w.scaffold.Write(name); err != nil {
		return nil, err
	}

	return state, nil
}
