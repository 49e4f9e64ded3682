package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
// This prevents test pollution from flag state on the real root.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depwatch",
		Short: "Live dependency graph monitor",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for depwatch")
	assert.Contains(t, output, "__depwatch_debug")
	assert.Contains(t, output, "complete -o default -F __start_depwatch depwatch")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef depwatch")
	assert.Contains(t, output, "_depwatch()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "fish completion for depwatch")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	cmd := completionCmd
	err := cmd.Args(cmd, []string{"tcsh"})
	assert.Error(t, err)
}
