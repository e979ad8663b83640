package provision

import (
	"fmt"
	"strings"

	"quack/internal/console"
	"quack/internal/execx"
	"quack/internal/logger"
)

// LinkOutcome is the result of the remote-linking stage.
type LinkOutcome int

const (
	// Linked means the local repository now points at the created URL.
	Linked LinkOutcome = iota
	// LinkSkipped means the operator declined linking; nothing was mutated.
	LinkSkipped
)

// Linker initializes local version control and binds the configured remote
// (conventionally "origin") to the created repository URL.
type Linker struct {
	run    execx.Runner
	con    console.Console
	remote string
}

// NewLinker builds a Linker binding the given remote name.
func NewLinker(run execx.Runner, con console.Console, remote string) *Linker {
	return &Linker{run: run, con: con, remote: remote}
}

// Link asks for consent (default yes), then initializes git if needed and
// points the remote at url. An existing remote of the same name has its URL
// replaced; a second remote is never added alongside it. Declining returns
// LinkSkipped without touching the working copy.
func (l *Linker) Link(url string) (LinkOutcome, error) {
	proceed, err := l.con.Confirm("Link local repo with new repo? (Y/n): ", true)
	if err != nil {
		return LinkSkipped, err
	}
	if !proceed {
		logger.Info("[INFO] Skipped setting git remotes.\n")
		return LinkSkipped, nil
	}

	// git init is idempotent on an already-initialized repository.
	if err := l.git("init"); err != nil {
		return LinkSkipped, err
	}

	remotes, err := l.run.Run("git", "remote")
	if err != nil {
		return LinkSkipped, fmt.Errorf("failed to run 'git remote': %w", err)
	}
	if !remotes.Success {
		return LinkSkipped, fmt.Errorf("could not list git remotes: %s", remotes.Stderr)
	}

	// Remote names are listed one per line; match the exact name so that
	// e.g. "origin-backup" does not pass for "origin".
	exists := false
	for _, line := range strings.Split(remotes.Stdout, "\n") {
		if strings.TrimSpace(line) == l.remote {
			exists = true
			break
		}
	}

	if exists {
		err = l.git("remote", "set-url", l.remote, url)
	} else {
		err = l.git("remote", "add", l.remote, url)
	}
	if err != nil {
		return LinkSkipped, err
	}
	return Linked, nil
}

// git runs one git command, treating a non-success outcome as an error with
// the captured stderr as the message.
func (l *Linker) git(args ...string) error {
	out, err := l.run.Run("git", args...)
	if err != nil {
		return fmt.Errorf("failed to run 'git %s': %w", strings.Join(args, " "), err)
	}
	if !out.Success {
		return fmt.Errorf("could not set git remote: %s", out.Stderr)
	}
	return nil
}
