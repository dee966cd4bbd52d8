package main

import (
	"context"
	"os"
	"testing"

	"github.com/phrazzld/readme-api/internal/app"
	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                8080,
			LogLevel:            "debug",
			MaxInputChars:       200,
			ReadTimeoutSeconds:  5,
			WriteTimeoutSeconds: 5,
		},
		LLM: config.LLMConfig{
			ModelName:               "gemini-2.0-flash",
			APIVersion:              "v1",
			Temperature:             0.7,
			MaxOutputTokens:         2048,
			RequestTimeoutSeconds:   5,
			DegradedCooldownMinutes: 10,
		},
		GitHub: config.GitHubConfig{CommitLimit: 10},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config, opts ...func(*app.Options)) (*application, *logger.TestLogBuffer) {
	t.Helper()

	log, logs := logger.GetTestLogger(t)
	a, err := newApplication(context.Background(), cfg, log, opts...)
	require.NoError(t, err)
	return a, logs
}

// chdir switches to dir for the duration of the test, so that no config.yaml
// from the working tree is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestInitializeApp(t *testing.T) {
	t.Setenv("READMEGEN_SERVER_LOG_LEVEL", "warn")
	t.Setenv("READMEGEN_SERVER_PORT", "9191")
	t.Setenv("READMEGEN_LLM_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	chdir(t, t.TempDir())

	cfg, l, err := initializeApp()
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "warn", cfg.Server.LogLevel)
}

func TestInitializeAppInvalidConfig(t *testing.T) {
	t.Setenv("READMEGEN_SERVER_PORT", "0")
	chdir(t, t.TempDir())

	_, _, err := initializeApp()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
}
