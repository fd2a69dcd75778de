// Package tests contains helpers shared by the route tests.
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

// StaticDir is the absolute path of the static files in this repository.
var StaticDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "static")
}()

// NewTestConfig returns a configuration without external services.
func NewTestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost: "localhost",
		ServerPort: "0",
		SessionTTL: time.Hour,
		StaticDir:  StaticDir,
		TurnPolicy: game.PolicyStandard,
	}
}

// NewTestApp builds an app that keeps sessions in memory.
func NewTestApp(cfg *config.ServerConfig) *fiber.App {
	return internal.BuildApp(cfg, &services.Services{})
}

// Do sends a request with an optional body and returns the status code and the raw response body.
// A string body is sent as is, anything else is encoded as JSON.
func Do(t *testing.T, app *fiber.App, method, url string, body any) (int, []byte) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			payload = bytes.NewBufferString(raw)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			payload = bytes.NewBuffer(jsonData)
		}
	}

	req, err := http.NewRequest(method, url, payload)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBody
}
