// Package cli implements the depwatch command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small implementation function. The structure keeps a
// separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command implementations (watchCommand, statusCommand, Init)
//   - Domain logic (in other internal packages)
//
// # Command Structure
//
// The root command is "depwatch" with subcommands for different
// operations:
//
//	depwatch watch       - Live TUI dashboard
//	depwatch status      - One-shot graph summary (--json for machines)
//	depwatch init        - Create .depwatch.yaml config
//	depwatch version     - Version information
//	depwatch completion  - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands. Command-specific flags like
// --server and --json are defined on individual commands.
//
// Config resolution order is: --server flag, then the config file found
// via --config or directory search, then built-in defaults.
package cli
