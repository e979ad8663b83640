package provision

import (
	"regexp"
	"strings"

	"quack/internal/console"
	"quack/internal/logger"
)

// Visibility is the access level of the repository to create.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Flag returns the gh flag form of the visibility (e.g., --public).
func (v Visibility) Flag() string { return "--" + string(v) }

// repoNamePattern matches GitHub's allowed repository name characters.
var repoNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// IsValidRepoName reports whether name satisfies GitHub repository name rules.
func IsValidRepoName(name string) bool {
	return repoNamePattern.MatchString(name)
}

// ParseVisibility interprets one trimmed visibility answer.
// Empty input is not handled here; callers apply their default first.
func ParseVisibility(answer string) (Visibility, bool) {
	switch strings.ToLower(answer) {
	case "y", "yes", "public":
		return VisibilityPublic, true
	case "n", "no", "private":
		return VisibilityPrivate, true
	default:
		return "", false
	}
}

// Collector gathers the repository name and visibility from the operator.
// Both prompts loop until the input is valid; there is no retry limit, so a
// manual interrupt is the only escape. Accepted values are never changed
// afterward.
type Collector struct {
	con console.Console
	def Visibility
}

// NewCollector builds a Collector with the given default visibility, applied
// when the operator answers the visibility prompt with an empty line.
func NewCollector(con console.Console, def Visibility) *Collector {
	return &Collector{con: con, def: def}
}

// Collect runs the two validated prompt loops and returns the accepted values.
// An error is returned only when the console itself fails (e.g., closed stdin).
func (c *Collector) Collect() (string, Visibility, error) {
	name, err := c.collectName()
	if err != nil {
		return "", "", err
	}
	visibility, err := c.collectVisibility()
	if err != nil {
		return "", "", err
	}
	return name, visibility, nil
}

func (c *Collector) collectName() (string, error) {
	for {
		name, err := c.con.Prompt("\nNew repo name?: ")
		if err != nil {
			return "", err
		}
		if IsValidRepoName(name) {
			return name, nil
		}
		logger.Warn("[WARN] Invalid repository name. Only alphanumeric characters and '.', '-', '_' are allowed.\n")
	}
}

func (c *Collector) collectVisibility() (Visibility, error) {
	for {
		answer, err := c.con.Prompt("Make repo public? (Y/n): ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			return c.def, nil
		}
		if visibility, ok := ParseVisibility(answer); ok {
			return visibility, nil
		}
		logger.Warn("[WARN] Invalid option. Type 'Y' for public or 'n' for private.\n")
	}
}
