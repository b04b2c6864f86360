package services

import (
	"context"
	"testing"

	"github.com/clinicavet/rut-api/internal/config"
	"github.com/clinicavet/rut-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerWithoutRedis(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "false")
	cfg, err := config.Load()
	require.NoError(t, err)

	container, err := NewContainer(cfg, logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	resp, err := container.RUTService.Validate(context.Background(), "7.654.321-6")
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, 1, container.CacheSize())

	health := container.Health()
	assert.Contains(t, health, "cache")
	assert.Contains(t, health, "rut")
	assert.Same(t, cfg, container.GetConfig())
}
