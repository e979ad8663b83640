package provision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quack/internal/config"
	"quack/internal/execx"
)

func testGitHub() config.GitHub {
	return config.GitHub{Host: "github.com", GitProtocol: "https", CLIVersion: "2.76.0"}
}

func TestEnsureAuthenticatedShortCircuits(t *testing.T) {
	run := newFakeRunner()
	run.outcomes["gh auth status"] = execx.Outcome{Success: true, Stdout: "Logged in to github.com"}
	env := newFakeEnv("linux")

	err := NewAuthManager(run, env, testGitHub()).EnsureAuthenticated()
	require.NoError(t, err)
	require.Empty(t, run.interactive, "an existing session must not trigger a login flow")
}

func TestEnsureAuthenticatedClearsStaleTokens(t *testing.T) {
	run := newFakeRunner()
	run.outcomes["gh auth status"] = execx.Outcome{Success: true}
	env := newFakeEnv("linux")
	env.vars["GITHUB_TOKEN"] = "ghp_stale"
	env.vars["GH_TOKEN"] = "ghs_stale"

	err := NewAuthManager(run, env, testGitHub()).EnsureAuthenticated()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"GITHUB_TOKEN", "GH_TOKEN"}, env.unset,
		"stale tokens must be cleared before probing auth status")
	require.Empty(t, env.vars)
}

func TestEnsureAuthenticatedRunsLoginFlow(t *testing.T) {
	run := newFakeRunner()
	run.outcomes["gh auth status"] = execx.Outcome{Success: false, Stderr: "You are not logged in"}
	env := newFakeEnv("linux")

	err := NewAuthManager(run, env, testGitHub()).EnsureAuthenticated()
	require.NoError(t, err, "a successful login recovers the stage")
	require.Equal(t, []string{"gh auth login -p https -w"}, run.interactive)
	require.Equal(t, 1, run.called("gh config set -h github.com git_protocol https"),
		"the git protocol is pinned after a fresh login")
}

func TestEnsureAuthenticatedProtocolPinFailureIsNotFatal(t *testing.T) {
	run := newFakeRunner()
	run.outcomes["gh auth status"] = execx.Outcome{Success: false}
	run.launchErrs["gh config set -h github.com git_protocol https"] = errNotFound
	env := newFakeEnv("linux")

	err := NewAuthManager(run, env, testGitHub()).EnsureAuthenticated()
	require.NoError(t, err, "a fresh login must not be aborted over a protocol-pin failure")

	run = newFakeRunner()
	run.outcomes["gh auth status"] = execx.Outcome{Success: false}
	run.outcomes["gh config set -h github.com git_protocol https"] = execx.Outcome{
		Success: false, Stderr: "unknown host",
	}

	err = NewAuthManager(run, env, testGitHub()).EnsureAuthenticated()
	require.NoError(t, err)
}

func TestEnsureAuthenticatedLoginFailureIsFatal(t *testing.T) {
	run := newFakeRunner()
	run.outcomes["gh auth status"] = execx.Outcome{Success: false}
	run.interErrs["gh auth login -p https -w"] = errExit
	env := newFakeEnv("linux")

	err := NewAuthManager(run, env, testGitHub()).EnsureAuthenticated()
	require.Error(t, err)
	require.Contains(t, err.Error(), "authentication failed")
}
