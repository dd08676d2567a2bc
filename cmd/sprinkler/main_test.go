package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SmartSprinkler.dashboard/internal/config"
	"SmartSprinkler.dashboard/internal/middleware"
)

var farmExampleArgs = strings.Fields("0.2 0.8 0.5 0.5 0.5 0.5 0.8 0.8 0.5 0.5 0.5 0.2 0.5 0.5 0.5 0.5 0.5 0.2 0.5 0.5")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testConfig() config.Config {
	return config.Config{Port: "0", AllowedOrigins: []string{"http://farm.test"}}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sprinkler version "+Version+"\n", out)
}

func TestAnalyzeCommand_Local(t *testing.T) {
	out, err := execute(t, append([]string{"analyze"}, farmExampleArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Parcel 1")
	assert.Contains(t, out, "Soil Moisture Level")
	assert.Contains(t, out, "Sprinklers ON: 3  OFF: 17  Water saved: 85.0%")
	assert.Contains(t, out, "Average: 0.50  Highest: 0.80  Lowest: 0.20")
}

func TestAnalyzeCommand_WrongCount(t *testing.T) {
	_, err := execute(t, "analyze", "0.1", "0.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
}

func TestAnalyzeCommand_NotANumber(t *testing.T) {
	_, err := execute(t, "analyze", "dry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestAnalyzeCommand_NonFinite(t *testing.T) {
	args := append([]string{"analyze"}, farmExampleArgs...)
	args[5] = "NaN"
	_, err := execute(t, args...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestAnalyzeCommand_Remote(t *testing.T) {
	handler, err := buildHandler(testConfig(), config.DefaultLabels)
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	out, err := execute(t, append([]string{"analyze", "--remote", srv.URL}, farmExampleArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Water saved: 85.0%")
	assert.Contains(t, out, "Root Zone Moisture")
}

func TestBuildHandler(t *testing.T) {
	handler, err := buildHandler(testConfig(), config.DefaultLabels)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodOptions, "/api/sensors/1", nil)
	req.Header.Set("Origin", "http://farm.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://farm.test", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBuildHandler_RejectsBadLabels(t *testing.T) {
	_, err := buildHandler(testConfig(), []string{"just one"})
	assert.Error(t, err)
}
