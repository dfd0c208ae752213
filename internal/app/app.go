package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	httpapp "snapfolio/internal/app/http"
	"snapfolio/internal/config"
	"snapfolio/internal/repository"
	dashboard "snapfolio/internal/services/dashboard_service"
	engagement "snapfolio/internal/services/engagement_service"
	gallery "snapfolio/internal/services/gallery_service"
	item "snapfolio/internal/services/item_service"
	media "snapfolio/internal/services/media_service"
	"snapfolio/internal/storage/mediafolder"
	"snapfolio/internal/storage/postgresql"
	transport "snapfolio/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.App
	storage    *postgresql.Storage
	log        *slog.Logger
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	provider, err := mediafolder.NewCloudinaryStorage(
		cfg.Provider.CloudName,
		cfg.Provider.APIKey,
		cfg.Provider.APISecret,
		cfg.Provider.BaseFolder,
	)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepository(storage.Pool())

	var defaultOwner uuid.UUID
	if cfg.DefaultOwner != "" {
		defaultOwner, err = uuid.Parse(cfg.DefaultOwner)
		if err != nil {
			return nil, err
		}
	}

	galleryService := gallery.NewGalleryService(
		log, repos.Gallery, repos.User, provider, cfg.PlanLimits, defaultOwner)
	mediaService := media.NewMediaService(log, provider)
	itemService := item.NewItemService(log, repos.Item)
	engagementService := engagement.NewEngagementService(log, repos.Engagement)
	dashboardService := dashboard.NewDashboardService(log, repos.Stats)

	routers := transport.NewRouter(
		log, galleryService, mediaService, itemService, engagementService, dashboardService)

	server := httpapp.New(log, routers, storage.HealthCheck, cfg.HTTP.Host, cfg.HTTP.Port)

	return &App{
		HTTPServer: server,
		storage:    storage,
		log:        log,
	}, nil
}

func (a *App) Stop() {
	a.HTTPServer.Stop()
	a.storage.Stop()
	a.log.Info("application stopped")
}
