package provision

import (
	"fmt"

	"quack/internal/config"
	"quack/internal/console"
	"quack/internal/execx"
	"quack/internal/installer"
	"quack/internal/logger"
)

// ToolChecker ensures the GitHub CLI is present, offering an OS-specific
// installation when it is not.
type ToolChecker struct {
	run execx.Runner
	con console.Console
	env console.Env
	gh  config.GitHub

	// forPlatform resolves the installer strategy; swappable so tests can
	// exercise the escalation paths without real installers.
	forPlatform func(console.Env, execx.Runner, config.GitHub) (installer.Strategy, bool)
}

// NewToolChecker builds a ToolChecker over the given capabilities.
func NewToolChecker(run execx.Runner, con console.Console, env console.Env, gh config.GitHub) *ToolChecker {
	return &ToolChecker{run: run, con: con, env: env, gh: gh, forPlatform: installer.ForPlatform}
}

// EnsureInstalled probes for the GitHub CLI and returns immediately when it is
// already installed. Otherwise it explains why the tool is needed, asks for
// consent, and dispatches to the installer strategy for the host OS.
//
// A refusal, an unsupported platform, or a failed install is fatal to the run.
// The Windows manual-download path surfaces installer.ErrManualActionPending,
// which the driver treats as an instructive early exit rather than a failure.
func (c *ToolChecker) EnsureInstalled() error {
	// A version query doubles as the presence probe: only a launch failure
	// (binary missing) means the tool is absent.
	if _, err := c.run.Run("gh", "--version"); err == nil {
		logger.Info("[INFO] GitHub CLI is already installed.\n")
		return nil
	}

	logger.Info("[INFO] The GitHub CLI is required for authentication, repository creation, and other GitHub operations.\n")

	consent, err := c.con.Confirm("Do you want to install it? (y/n): ", false)
	if err != nil {
		return err
	}
	if !consent {
		return ErrInstallDeclined
	}

	strategy, ok := c.forPlatform(c.env, c.run, c.gh)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedOS, c.env.OS())
	}

	logger.Debug("[DEBUG] Installing GitHub CLI using the %s strategy\n", strategy.Name())
	if err := strategy.Install(); err != nil {
		return err
	}

	logger.Info("[INFO] GitHub CLI installed.\n")
	return nil
}
