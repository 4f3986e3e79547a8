package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/tui"
)

func tuiCmd(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui <story>",
		Short: "Explore a story in the terminal",
		Long: `Mount a story and drive it from the keyboard: move between its
interactive elements, click, hover and press Escape.

Examples:
  headless tui visibility--inception`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.story(args[0])
			if err != nil {
				return err
			}

			// Logs would tear the alternate screen; send them to a file or
			// drop them.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logOut = f
			}

			return tui.Run(cmd.Context(), st, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger(logOut))
		},
	}

	cmd.Flags().StringVar(&logFile, "log", "", "Append logs to this file")

	return cmd
}
