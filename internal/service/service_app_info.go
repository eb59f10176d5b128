package service

import (
	"context"

	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService never fails: builds without linker flags report "N/A",
// and a zero AppBuildInfo is normalised the same way.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	if info == (models.AppBuildInfo{}) {
		info = models.NewAppBuildInfo("", "", "")
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
