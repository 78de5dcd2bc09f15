package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginCommand(t *testing.T) {
	cmd := NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("client-id"))
	assert.NotNil(t, cmd.Flags().Lookup("client-secret"))
}

func TestTokenCommand(t *testing.T) {
	t.Run("prints the stored token", func(t *testing.T) {
		viper.Reset()
		viper.Set("token", "Bearer abc123")

		defer viper.Reset()

		cmd := NewTokenCommand()

		var out bytes.Buffer

		cmd.SetOut(&out)

		err := cmd.RunE(cmd, nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc123\n", out.String())
	})

	t.Run("fails when not logged in", func(t *testing.T) {
		viper.Reset()

		defer viper.Reset()

		cmd := NewTokenCommand()

		err := cmd.RunE(cmd, nil)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})
}

func TestScopesCommand_JSON(t *testing.T) {
	viper.Reset()
	viper.Set("output", "json")

	defer viper.Reset()

	cmd := NewScopesCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)

	err := cmd.RunE(cmd, nil)
	require.NoError(t, err)

	var scopes []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	err = json.Unmarshal(out.Bytes(), &scopes)
	require.NoError(t, err)
	assert.Len(t, scopes, 15)

	names := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		names = append(names, scope.Name)
	}

	assert.Contains(t, names, "write_stories")
	assert.Contains(t, names, "read_followers")
	assert.NotContains(t, names, "read_stories")
}

func TestSaveAndLoadConfig(t *testing.T) {
	viper.Reset()

	defer viper.Reset()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	viper.SetConfigFile(configFile)

	err := saveConfig(&Config{ClientID: "my-client", Token: "Bearer abc123"})
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "client_id: my-client")
	assert.Contains(t, string(data), "token: Bearer abc123")

	require.NoError(t, viper.ReadInConfig())

	config := loadConfig()
	assert.Equal(t, "my-client", config.ClientID)
	assert.Equal(t, "Bearer abc123", config.Token)
}
