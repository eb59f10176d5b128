package service

import (
	"github.com/MKhiriev/go-version-gen/internal/adapter"
	"github.com/MKhiriev/go-version-gen/internal/config"
	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/render"
	"github.com/MKhiriev/go-version-gen/internal/store"
	"github.com/MKhiriev/go-version-gen/internal/utils"
	"github.com/MKhiriev/go-version-gen/models"
)

type Services struct {
	VersionService VersionService
	AppInfoService AppInfoService
}

// NewServices wires the generation pipeline for cfg: git runner, probe,
// cached collector, builder, renderer and emitter, wrapped in logging.
func NewServices(storages *store.Storages, cfg config.Generation, appInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	runner := adapter.NewCommandRunner(cfg.RepoDir, cfg.CommandTimeout, logger)
	collector := adapter.NewCachedCollector(adapter.NewRepositoryCollector(runner), adapter.DefaultCacheWindow, logger)

	renderer := render.NewRenderer(render.Options{
		Request:     cfg.Request,
		Environment: cfg.Environment,
		GlobalName:  cfg.GlobalName,
	})

	versionService, err := NewVersionService(VersionServiceDeps{
		Builder:   NewVersionBuilder(adapter.NewRepositoryProbe(runner), collector, logger),
		Emitter:   NewArtifactEmitter(renderer, storages.ArtifactStorage, logger),
		Collector: collector,
		Storage:   storages.ArtifactStorage,
		Renderer:  renderer,
		IDs:       utils.NewUUIDGenerator(),
	}, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfoService := NewAppInfoService(appInfo, logger)

	return &Services{
		VersionService: NewVersionLoggingService(logger).Wrap(versionService),
		AppInfoService: appInfoService,
	}, nil
}
