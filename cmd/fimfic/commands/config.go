package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fimfic-io/fimapi/internal/constants"
)

// Config is the CLI's persisted state.
type Config struct {
	// ClientID is remembered so subsequent logins only need the secret.
	ClientID string `yaml:"client_id,omitempty"`
	// Token is the bearer token obtained by `fimfic login`.
	Token string `yaml:"token,omitempty"`
}

func loadConfig() *Config {
	return &Config{
		ClientID: viper.GetString("client_id"),
		Token:    viper.GetString("token"),
	}
}

func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".fimfic")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yaml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
