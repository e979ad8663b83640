package installer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quack/internal/config"
	"quack/internal/console"
	"quack/internal/execx"
	"quack/internal/logger"
)

// ErrManualActionPending signals that automated installation could not finish
// and the operator has to complete it by hand before re-running the tool.
// It is not a failure: the run ends with an instructive message and a zero exit.
var ErrManualActionPending = errors.New("manual installation pending")

// Strategy installs the GitHub CLI on one platform. Keeping the platforms as a
// closed set of strategies keeps the availability-check contract stable as
// platforms are added.
type Strategy interface {
	// Name identifies the strategy in log output.
	Name() string

	// Install performs the installation. It may return ErrManualActionPending
	// (wrapped) when the operator has to finish the install manually.
	Install() error
}

// ForPlatform returns the installer strategy for the host operating system,
// or ok=false when the platform is unsupported.
func ForPlatform(env console.Env, run execx.Runner, gh config.GitHub) (Strategy, bool) {
	switch env.OS() {
	case "darwin":
		return &brewStrategy{run: run}, true
	case "windows":
		return &wingetStrategy{run: run, env: env, version: gh.CLIVersion, download: downloadFile}, true
	case "linux":
		return &releaseStrategy{version: gh.CLIVersion, arch: hostArch()}, true
	default:
		return nil, false
	}
}

// brewStrategy installs gh with Homebrew on macOS.
type brewStrategy struct {
	run execx.Runner
}

func (*brewStrategy) Name() string { return "homebrew" }

func (s *brewStrategy) Install() error {
	// brew drives its own progress output, so it keeps the terminal.
	if err := s.run.RunInteractive("brew", "install", "gh"); err != nil {
		return fmt.Errorf("failed to install GitHub CLI with Homebrew: %w", err)
	}
	return nil
}

// wingetStrategy installs gh with winget on Windows when winget is available,
// and otherwise downloads the MSI installer into the operator's Downloads
// folder for a manual install.
type wingetStrategy struct {
	run     execx.Runner
	env     console.Env
	version string

	// download is swappable so the fallback path is testable offline.
	download func(url, destPath string) error
}

func (*wingetStrategy) Name() string { return "winget" }

func (s *wingetStrategy) Install() error {
	// Probe for winget the same way the tool itself is probed: a version
	// query, where a launch failure means the binary is absent.
	if _, err := s.run.Run("winget", "--version"); err != nil {
		return s.downloadInstaller()
	}

	out, err := s.run.Run("winget", "install", "--id", "GitHub.cli")
	if err != nil {
		return fmt.Errorf("failed to launch winget: %w", err)
	}
	// winget reports an already-current package on stderr with a failing exit.
	if out.Success || strings.Contains(out.Stderr, "No newer package versions are available") {
		return nil
	}
	return fmt.Errorf("failed to install GitHub CLI using winget: %s", out.Stderr)
}

// downloadInstaller fetches the MSI into the Downloads folder and defers to the
// operator. This path ends the run with a pending manual action, not success.
func (s *wingetStrategy) downloadInstaller() error {
	downloads, err := s.env.DownloadsDir()
	if err != nil {
		return fmt.Errorf("unable to determine the Downloads folder path: %w", err)
	}

	url := fmt.Sprintf(
		"https://github.com/cli/cli/releases/download/v%s/gh_%s_windows_amd64.msi",
		s.version, s.version)
	installerPath := filepath.Join(downloads, "gh_installer.msi")

	if err := s.download(url, installerPath); err != nil {
		return fmt.Errorf("failed to download GitHub CLI installer: %w", err)
	}

	logger.Info("[INFO] Installer downloaded to '%s'. Please install it manually.\n", installerPath)
	return fmt.Errorf("install the GitHub CLI using the downloaded 'gh_installer.msi' and rerun the program: %w",
		ErrManualActionPending)
}
