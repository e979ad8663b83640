package main

import (
	"quack/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The quack project is a GitHub repository bootstrapping tool that:
//   - Ensures the GitHub CLI (`gh`) is installed, offering an OS-specific install
//     (Homebrew on macOS, winget or a manual MSI download on Windows, a GitHub
//     release download on Linux) when it is missing
//   - Authenticates the operator with GitHub through the `gh` CLI, driving an
//     interactive browser login when no valid session exists
//   - Collects the desired repository name and visibility interactively,
//     re-prompting until the input is valid
//   - Creates the remote repository via `gh repo create` and captures the new
//     repository URL from the command output
//   - Initializes the local git repository and binds the "origin" remote to the
//     created URL, replacing an existing binding rather than duplicating it
//   - Scaffolds starter README.md and LICENSE files
//
// Error handling strategy:
//   - Each stage of the workflow returns a typed error; the workflow halts on the
//     first failure so no stage runs against an unsatisfied precondition
//   - The cmd package is the only place failures are converted into printed
//     messages and a non-zero process exit
//
// Integration points:
//   - All GitHub and git operations go through the external `gh` and `git`
//     binaries; nothing talks to the GitHub API for repository creation directly
//   - Installation on Linux downloads and extracts official release archives,
//     placing the `gh` binary into a bin directory, rather than depending on any
//     particular distro package manager
//   - Nothing is persisted between runs: every invocation re-derives the machine
//     state by probing the external tools, which keeps each stage idempotent
func main() {
	cmd.Execute()
}
