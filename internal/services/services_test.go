package services

import (
	"testing"

	"github.com/lk16/reversi/internal/config"
	"github.com/stretchr/testify/require"
)

func TestInitServices_WithoutRedis(t *testing.T) {
	services, err := InitServices(&config.ServerConfig{})
	require.NoError(t, err)
	require.Nil(t, services.Redis)
	require.NoError(t, services.Close())
}

func TestInitRedis_InvalidURL(t *testing.T) {
	_, err := InitRedis("not-a-redis-url")
	require.Error(t, err)
	require.Contains(t, err.Error(), "error parsing Redis URL")
}
