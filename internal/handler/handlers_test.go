package handler

import (
	"testing"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/ratelimit"
	"github.com/MKhiriev/crrd/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}
	limiter := ratelimit.NewMemoryLimiter()
	t.Cleanup(limiter.Close)

	h, err := NewHandlers(&service.Services{}, Dependencies{Limiter: limiter}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that without an HTTP address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, Dependencies{}, config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
