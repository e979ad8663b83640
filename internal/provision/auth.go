package provision

import (
	"fmt"

	"quack/internal/config"
	"quack/internal/console"
	"quack/internal/execx"
	"quack/internal/logger"
)

// credentialVars are the token variables the gh CLI honors. A stale token in
// the environment overrides the interactive login state, so both are cleared
// before the authentication probe.
var credentialVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// AuthManager ensures the operator has a valid GitHub CLI session, driving an
// interactive browser login when no session exists.
type AuthManager struct {
	run execx.Runner
	env console.Env
	gh  config.GitHub
}

// NewAuthManager builds an AuthManager over the given capabilities.
func NewAuthManager(run execx.Runner, env console.Env, gh config.GitHub) *AuthManager {
	return &AuthManager{run: run, env: env, gh: gh}
}

// EnsureAuthenticated probes `gh auth status` and returns immediately when a
// session already exists. Otherwise it starts the interactive login flow and,
// on success, pins the git protocol preference so later git operations match
// the login choice. A failed login is fatal.
func (m *AuthManager) EnsureAuthenticated() error {
	for _, key := range credentialVars {
		if m.env.Get(key) != "" {
			logger.Info("[INFO] Clearing the %s environment variable...\n", key)
			if err := m.env.Unset(key); err != nil {
				return fmt.Errorf("failed to clear %s: %w", key, err)
			}
		}
	}

	status, err := m.run.Run("gh", "auth", "status")
	if err != nil {
		return fmt.Errorf("failed to run 'gh auth status': %w", err)
	}
	if status.Success {
		logger.Info("[INFO] You are already authenticated with GitHub.\n")
		return nil
	}

	logger.Info("[INFO] You are not logged in to GitHub via 'gh' CLI.\n")
	logger.Info("[INFO] Attempting automated authentication with predefined choices.\n")

	// -w opens a web browser for the authentication handshake.
	if err := m.run.RunInteractive("gh", "auth", "login", "-p", m.gh.GitProtocol, "-w"); err != nil {
		return fmt.Errorf("automated authentication failed: %w", err)
	}

	// A failure to pin the protocol is not worth aborting a fresh login over.
	out, err := m.run.Run("gh", "config", "set", "-h", m.gh.Host, "git_protocol", m.gh.GitProtocol)
	if err != nil {
		logger.Warn("[WARN] Could not set git protocol to %s: %v\n", m.gh.GitProtocol, err)
	} else if !out.Success {
		logger.Warn("[WARN] Could not set git protocol to %s: %s\n", m.gh.GitProtocol, out.Stderr)
	}

	return nil
}
