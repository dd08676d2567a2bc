package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SmartSprinkler.dashboard/internal/models"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.Auth0.Enabled())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("AUTH0_ISSUER", "https://farm.eu.auth0.com/")
	t.Setenv("AUTH0_AUDIENCE", "sprinkler-api")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Auth0.Enabled())
}

func TestParse_IncompleteAuth0(t *testing.T) {
	t.Setenv("AUTH0_ISSUER", "https://farm.eu.auth0.com/")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH0_AUDIENCE")
}

func TestParse_BadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Parse()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}

func TestLoadLabels_Default(t *testing.T) {
	labels, err := LoadLabels("")
	require.NoError(t, err)
	require.Len(t, labels, models.SensorCount)
	assert.Equal(t, "Soil Moisture Level", labels[0])
	assert.Equal(t, "Irrigation History", labels[19])

	labels[0] = "changed"
	assert.Equal(t, "Soil Moisture Level", DefaultLabels[0])
}

func TestLoadLabels_File(t *testing.T) {
	var b strings.Builder
	b.WriteString("sensors:\n")
	for i := 0; i < models.SensorCount; i++ {
		b.WriteString("  - Probe ")
		b.WriteByte(byte('A' + i))
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "labels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	labels, err := LoadLabels(path)
	require.NoError(t, err)
	assert.Equal(t, "Probe A", labels[0])
	assert.Equal(t, "Probe T", labels[19])
}

func TestParseLabels_Invalid(t *testing.T) {
	_, err := ParseLabels([]byte("sensors:\n  - only one\n"))
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = ParseLabels([]byte("sensors: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse labels file")
}

func TestLoadLabels_MissingFile(t *testing.T) {
	_, err := LoadLabels(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read labels file")
}

func TestLoadLabels_ExampleFileMatchesDefaults(t *testing.T) {
	labels, err := LoadLabels(filepath.Join("..", "..", "configs", "labels.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLabels, labels)
}
