package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quack/internal/config"
	"quack/internal/console"
	"quack/internal/execx"
	"quack/internal/installer"
	"quack/internal/logger"
	"quack/internal/provision"
)

// configPath holds the path to the optional configuration YAML file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// newCmd runs the full provisioning workflow: ensure the GitHub CLI, ensure
// authentication, collect repository details, create the remote repository,
// link the local working copy, and scaffold starter files.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new GitHub repository and link it to the local repo",
	Run: func(cmd *cobra.Command, args []string) {
		printIntro()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		workflow := provision.New(cfg, execx.System{}, console.Stdio(), console.SystemEnv{}, ".")

		summary, err := workflow.Run()
		if err != nil {
			// The manual-install path is an instructive early exit, not a
			// failure: the operator finishes the install and re-runs.
			if errors.Is(err, installer.ErrManualActionPending) {
				logger.Info("[INFO] %v\n", err)
				return
			}
			logger.Error("[ERROR] Error: %v\n", err)
			os.Exit(1)
		}

		if summary.Linked {
			logger.Info("[INFO] GitHub repository created and linked. You can now manually add, commit, and push files.\n")
		} else {
			logger.Info("[INFO] GitHub repository created.\n")
		}
	},
}

// printIntro describes what the program is about to do.
func printIntro() {
	fmt.Println("\n🦆 Welcome to Quack! 🦆")
	fmt.Println("\nMaking your GitHub life easier by:")
	fmt.Println("  - Ensuring GitHub CLI is installed")
	fmt.Println("  - Authenticating you with GitHub")
	fmt.Println("  - Creating a new GitHub repository")
	fmt.Println("  - Linking the new repo to your local repo")
	fmt.Println("\nLet's get started!")
}

// init sets up CLI flags and registers the command.
func init() {
	newCmd.Flags().StringVarP(&configPath, "config", "c", "quack.yaml", "Path to configuration file")
	rootCmd.AddCommand(newCmd)
}
