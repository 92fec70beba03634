// Package cli wires the backend into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitdeckd",
		Short: "Gitdeckd is the backend of the gitdeck desktop Git client",
		Long: `Gitdeckd is the backend of the gitdeck desktop Git client.

The desktop shell runs it as a sidecar and issues commands over stdin/stdout.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}
