package routes_test

import (
	"net/http"
	"testing"

	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	app := tests.NewTestApp(tests.NewTestConfig())

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/game", resp.Header.Get("Location"))
}

func TestRootEndpoint_NoStaticDir(t *testing.T) {
	cfg := tests.NewTestConfig()
	cfg.StaticDir = ""
	app := tests.NewTestApp(cfg)

	status, _ := tests.Do(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = tests.Do(t, app, http.MethodGet, "/game", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestWebsocketEndpoint_RequiresUpgrade(t *testing.T) {
	app := tests.NewTestApp(tests.NewTestConfig())

	status, _ := tests.Do(t, app, http.MethodGet, "/ws", nil)
	require.Equal(t, http.StatusUpgradeRequired, status)
}
