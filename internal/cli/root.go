package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands
var (
	configFlag  string
	verboseFlag bool
	noColorFlag bool
)

// rootCmd is the base command for depwatch.
var rootCmd = &cobra.Command{
	Use:   "depwatch",
	Short: "Live dependency graph monitor",
	Long: `depwatch is a terminal dashboard for a live service dependency graph.

It fetches the graph snapshot from a monitoring backend, then follows
metric updates pushed over a socket channel, showing per-node detail
views with latest values and sparkline history.

Run 'depwatch init' to create a config, then 'depwatch watch' to start
the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			lipgloss.SetColorProfile(termenv.Ascii)
			os.Setenv("NO_COLOR", "1")
		}
		if verboseFlag {
			os.Setenv("DEPWATCH_DEBUG", "1")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: search for .depwatch.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Verbose returns the --verbose flag value.
func Verbose() bool {
	return verboseFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors already format their own suggestion line.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
