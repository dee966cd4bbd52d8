package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"READMEGEN_SERVER_PORT",
		"READMEGEN_SERVER_LOG_LEVEL",
		"READMEGEN_SERVER_MAX_INPUT_CHARS",
		"READMEGEN_LLM_GEMINI_API_KEY",
		"READMEGEN_LLM_MODEL_NAME",
		"READMEGEN_LLM_TEMPERATURE",
		"READMEGEN_LLM_BASE_URL",
		"READMEGEN_GITHUB_TOKEN",
		"READMEGEN_GITHUB_COMMIT_LIMIT",
		"GEMINI_API_KEY",
		"GITHUB_TOKEN",
	} {
		t.Setenv(name, "")
	}
}

// TestLoadDefaults verifies the defaults used when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err, "Load() should succeed with defaults only")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 20000, cfg.Server.MaxInputChars)
	assert.Empty(t, cfg.LLM.GeminiAPIKey, "API key is optional")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, "v1", cfg.LLM.APIVersion)
	assert.Equal(t, "gemini-pro", cfg.LLM.FallbackModelName)
	assert.Equal(t, "v1beta", cfg.LLM.FallbackAPIVersion)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, int32(2048), cfg.LLM.MaxOutputTokens)
	assert.Equal(t, 10, cfg.LLM.DegradedCooldownMinutes)
	assert.Equal(t, 10, cfg.GitHub.CommitLimit)
}

// TestLoadFromEnv verifies that prefixed environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("READMEGEN_SERVER_PORT", "9090")
	t.Setenv("READMEGEN_SERVER_LOG_LEVEL", "debug")
	t.Setenv("READMEGEN_LLM_GEMINI_API_KEY", "prefixed-key")
	t.Setenv("READMEGEN_LLM_MODEL_NAME", "gemini-2.5-flash")
	t.Setenv("READMEGEN_LLM_TEMPERATURE", "0.2")
	t.Setenv("READMEGEN_GITHUB_TOKEN", "prefixed-token")
	t.Setenv("READMEGEN_GITHUB_COMMIT_LIMIT", "25")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "prefixed-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, "prefixed-token", cfg.GitHub.Token)
	assert.Equal(t, 25, cfg.GitHub.CommitLimit)
}

// TestLoadEnvAliases verifies the unprefixed variable names are honored and
// that the prefixed names win when both are present.
func TestLoadEnvAliases(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "alias-key")
	t.Setenv("GITHUB_TOKEN", "alias-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "alias-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "alias-token", cfg.GitHub.Token)

	t.Setenv("READMEGEN_LLM_GEMINI_API_KEY", "prefixed-key")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadFile verifies values are read from an explicit YAML file and that
// environment variables still take precedence.
func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "readmegen.yaml")
	content := []byte(`
server:
  port: 7000
  log_level: warn
llm:
  model_name: file-model
  fallback_model_name: ""
github:
  commit_limit: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("READMEGEN_SERVER_PORT", "7100")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Server.Port, "env should override file")
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "file-model", cfg.LLM.ModelName)
	assert.Empty(t, cfg.LLM.FallbackModelName)
	assert.Equal(t, 3, cfg.GitHub.CommitLimit)
}

func TestLoadFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{"port out of range", map[string]string{"READMEGEN_SERVER_PORT": "999999"}},
		{"invalid log level", map[string]string{"READMEGEN_SERVER_LOG_LEVEL": "verbose"}},
		{"zero max input", map[string]string{"READMEGEN_SERVER_MAX_INPUT_CHARS": "-1"}},
		{"temperature too high", map[string]string{"READMEGEN_LLM_TEMPERATURE": "3.5"}},
		{"bad base url", map[string]string{"READMEGEN_LLM_BASE_URL": "not a url"}},
		{"commit limit too high", map[string]string{"READMEGEN_GITHUB_COMMIT_LIMIT": "500"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}
