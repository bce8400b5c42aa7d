package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_ConfigWinsOverBuildVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v2.5.1", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v2.5.1", svc.GetAppVersion(context.Background()))
	assert.Equal(t, build, svc.GetBuildInfo(context.Background()))
}

func TestNewAppInfoService_NoVersionAnywhere_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(ctx))
}
