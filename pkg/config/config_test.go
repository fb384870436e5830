package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, ProviderGroq, cfg.Reasoning.Provider)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Reasoning.Groq.BaseURL)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Expiration)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestFromViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REASONING_PROVIDER", " Gemini ")
	t.Setenv("DATASET_PATH", "/data/schemes")
	t.Setenv("GIGACHAT_INSECURE_SKIP_VERIFY", "false")

	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.Reasoning.Provider)
	assert.Equal(t, "/data/schemes", cfg.Dataset.Path)
	assert.False(t, cfg.Reasoning.GigaChat.InsecureSkipVerify)
}

func TestFromViper_ConfigFileBelowEnvironment(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
server:
  port: "7000"
logger:
  level: debug
`)))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestFromViper_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("REASONING_PROVIDER", "openai")

	_, err := fromViper(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reasoning provider")
}
