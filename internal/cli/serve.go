package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/avatar"
	"gitdeck.dev/gitdeck/internal/dispatch"
	"gitdeck.dev/gitdeck/internal/git"
	"gitdeck.dev/gitdeck/internal/gitexec"
	"gitdeck.dev/gitdeck/internal/logging"
	"gitdeck.dev/gitdeck/internal/sshkey"
)

// newServeCmd creates the serve command, the backend's main mode.
func newServeCmd() *cobra.Command {
	var (
		debug   bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve frontend commands over stdin/stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.Setup(logFile, debug)

			execer := gitexec.NewSystem()
			commands := &dispatch.Commands{
				Git:     git.NewService(execer),
				Avatars: avatar.NewResolver(execer),
				Keys:    sshkey.NewManager(execer),
			}

			registry := dispatch.NewRegistry()
			commands.RegisterAll(registry)

			return registry.Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also log to this file, with rotation")

	return cmd
}
