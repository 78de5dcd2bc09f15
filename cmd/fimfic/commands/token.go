package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the stored bearer token",
		Long:  "Print the bearer token obtained by a previous login, for reuse in other tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token == "" {
				return ErrNotLoggedIn
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.Token)

			return nil
		},
	}
}
