package provision

import (
	"fmt"
	"strings"

	"quack/internal/execx"
	"quack/internal/logger"
)

// Creator creates the remote repository through `gh repo create` and extracts
// the new repository URL from the command output.
type Creator struct {
	run execx.Runner
}

// NewCreator builds a Creator over the given runner.
func NewCreator(run execx.Runner) *Creator {
	return &Creator{run: run}
}

// Create invokes repository creation and returns the remote URL.
//
// gh prints the new repository URL among other free-form output, so the output
// is scanned line by line in order and the first line containing an SSH-style
// marker (git@) or an HTTPS scheme wins; later matching lines are ignored.
// Output with no qualifying line is a hard failure even if creation nominally
// succeeded, because the rest of the workflow is useless without the URL.
func (c *Creator) Create(name string, visibility Visibility) (string, error) {
	out, err := c.run.Run("gh", "repo", "create", name, visibility.Flag())
	if err != nil {
		return "", fmt.Errorf("failed to run 'gh repo create': %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("could not create GitHub repository: %s", out.Stderr)
	}

	for _, line := range strings.Split(out.Stdout, "\n") {
		if strings.Contains(line, "git@") || strings.Contains(line, "https://") {
			url := strings.TrimSpace(line)
			logger.Debug("[DEBUG] Captured repository URL: %s\n", url)
			return url, nil
		}
	}
	return "", ErrURLNotFound
}
