package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"snapfolio/internal/lib/logger/sl"
	"snapfolio/internal/metrics"
	"snapfolio/internal/storage"
	"snapfolio/internal/storage/mediafolder"
)

// placeholderSource is uploaded when the caller supplies no source asset,
// matching the upload bridge's smoke-test behavior.
const placeholderSource = "https://via.placeholder.com/150"

// MediaService fronts the external media host for the two direct provider
// endpoints: named folder creation and asset upload.
type MediaService struct {
	log      *slog.Logger
	provider mediafolder.Provider
}

func NewMediaService(log *slog.Logger, provider mediafolder.Provider) *MediaService {
	return &MediaService{
		log:      log,
		provider: provider,
	}
}

// CreateFolder creates <base_folder>/<folderName> at the provider and
// returns the full path. An already existing folder counts as success.
func (s *MediaService) CreateFolder(ctx context.Context, folderName string) (string, error) {
	const op = "media_service.CreateFolder"
	log := s.log.With(
		slog.String("op", op),
		slog.String("folder_name", folderName),
	)

	fullPath := fmt.Sprintf("%s/%s", s.provider.BaseFolder(), folderName)

	if err := s.provider.CreateFolder(ctx, fullPath); err != nil {
		if !errors.Is(err, storage.ErrFolderExists) {
			metrics.ProviderCallsTotal.WithLabelValues("create_folder", "error").Inc()
			log.Error("failed to create provider folder", sl.Err(err))
			return "", fmt.Errorf("%s: %w", op, err)
		}
		log.Info("folder already exists at provider")
	}
	metrics.ProviderCallsTotal.WithLabelValues("create_folder", "ok").Inc()

	log.Info("provider folder ready", slog.String("folder_path", fullPath))
	return fullPath, nil
}

// UploadAsset pushes source into folder under the given title and returns
// the secure URL. Persisting the Item row is the caller's separate request;
// nothing links the two, so an abandoned upload stays orphaned at the
// provider.
func (s *MediaService) UploadAsset(ctx context.Context, title, folder, source string) (string, error) {
	const op = "media_service.UploadAsset"
	log := s.log.With(
		slog.String("op", op),
		slog.String("folder", folder),
	)

	if source == "" {
		source = placeholderSource
	}

	url, err := s.provider.Upload(ctx, source, folder, title)
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("upload", "error").Inc()
		log.Error("failed to upload asset", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	metrics.ProviderCallsTotal.WithLabelValues("upload", "ok").Inc()

	log.Info("asset uploaded", slog.String("url", url))
	return url, nil
}
