package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fimfic-io/fimapi/pkg/fimapi"
	"github.com/fimfic-io/fimapi/pkg/fimclient"
)

// Static errors for err113 compliance.
var (
	ErrClientIDRequired = errors.New("client ID is required")
	ErrNotLoggedIn      = errors.New("not logged in, run 'fimfic login' first")
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to FimFiction",
		Long:  "Exchange OAuth2 client credentials for a bearer token and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID == "" {
				clientID = viper.GetString("client_id")
			}

			if clientID == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Client ID: ")
				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)
			}

			if clientID == "" {
				return ErrClientIDRequired
			}

			if clientSecret == "" {
				fmt.Print("Client secret: ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read client secret: %w", err)
				}

				clientSecret = string(byteSecret)

				fmt.Println()
			}

			client, err := fimclient.New(cmd.Context(), &fimapi.Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
			})
			if err != nil {
				if fimapi.IsUnprocessable(err) {
					return fmt.Errorf("authentication rejected, check your client ID and secret: %w", err)
				}

				return fmt.Errorf("failed to authenticate: %w", err)
			}

			bearer, err := client.BearerToken(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read bearer token: %w", err)
			}

			config := loadConfig()
			config.ClientID = clientID
			config.Token = bearer

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth client secret (prompted when omitted)")

	return cmd
}
