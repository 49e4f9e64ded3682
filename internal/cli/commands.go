package cli

import (
	"os"

	"github.com/depwatch/depwatch/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	watchServerFlag    string
	watchNamespaceFlag string
	statusServerFlag   string
	statusJSON         bool
	initServerFlag     string
	initForce          bool
)

// watchCmd starts the TUI dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dependency graph dashboard",
	Long: `Start an interactive TUI dashboard for the dependency graph.

Fetches the graph snapshot from the backend, then follows metric
updates pushed over the socket channel.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Reload the graph
  up/k        Select previous node
  down/j      Select next node
  Enter       Inspect selected node
  Esc         Back / close
  m           Toggle metrics overlay
  ?           Show help

Examples:
  depwatch watch
  depwatch watch --server http://graph.internal:8000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchServerFlag, watchNamespaceFlag)
	},
}

// statusCmd fetches the snapshot once and prints a summary
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend and graph status",
	Long: `Fetch the dependency graph once and print a summary.

Shows:
  - Backend reachability
  - Node and edge counts
  - DAG / cycle status
  - Node type breakdown

Examples:
  depwatch status
  depwatch status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand(statusServerFlag, statusJSON)
	},
}

// initCmd creates a new .depwatch.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .depwatch.yaml configuration",
	Long: `Initialize a new depwatch configuration file.

Creates a .depwatch.yaml file in the current directory with sensible
defaults and verifies the backend is reachable.

Examples:
  depwatch init
  depwatch init --server http://graph.internal:8000
  depwatch init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initServerFlag, initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for depwatch.

Examples:
  # Bash
  depwatch completion bash > /etc/bash_completion.d/depwatch

  # Zsh
  depwatch completion zsh > "${fpath[1]}/_depwatch"

  # Fish
  depwatch completion fish > ~/.config/fish/completions/depwatch.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// watch command flags
	watchCmd.Flags().StringVar(&watchServerFlag, "server", "", "backend URL (overrides config)")
	watchCmd.Flags().StringVar(&watchNamespaceFlag, "namespace", "", "socket.io namespace (overrides config)")

	// status command flags
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output in JSON format")
	statusCmd.Flags().StringVar(&statusServerFlag, "server", "", "backend URL (overrides config)")

	// init command flags
	initCmd.Flags().StringVar(&initServerFlag, "server", "", "pre-specify backend URL")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
