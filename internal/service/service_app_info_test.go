package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3", "2026-03-14", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "v1.2.3", got.BuildVersion())
	assert.Equal(t, "2026-03-14", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}

func TestAppInfoService_GetBuildInfo_Defaults(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "N/A", got.BuildVersion())
}
