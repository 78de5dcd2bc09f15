package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fimfic-io/fimapi/pkg/fimapi"
)

// NewScopesCommand creates the scopes command.
func NewScopesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List the OAuth scopes the API supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			type scopeInfo struct {
				Name        string `json:"name"        yaml:"name"`
				Description string `json:"description" yaml:"description"`
			}

			scopes := make([]scopeInfo, 0, len(fimapi.Scopes()))
			for _, scope := range fimapi.Scopes() {
				scopes = append(scopes, scopeInfo{
					Name:        scope.String(),
					Description: scope.Description(),
				})
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(scopes)
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())

				return encoder.Encode(scopes)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Scope", "Description")

				for _, scope := range scopes {
					_ = table.Append(scope.Name, scope.Description)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
