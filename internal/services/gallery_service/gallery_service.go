package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/lib/logger/sl"
	"snapfolio/internal/metrics"
	"snapfolio/internal/repository"
	"snapfolio/internal/storage"
	"snapfolio/internal/storage/mediafolder"
	"snapfolio/internal/transport/http/dto"
)

type GalleryService struct {
	log          *slog.Logger
	repo         repository.GalleryRepository
	users        repository.UserRepository
	provider     mediafolder.Provider
	planLimits   map[string]int
	defaultOwner uuid.UUID
}

func NewGalleryService(
	log *slog.Logger,
	repo repository.GalleryRepository,
	users repository.UserRepository,
	provider mediafolder.Provider,
	planLimits map[string]int,
	defaultOwner uuid.UUID,
) *GalleryService {
	return &GalleryService{
		log:          log,
		repo:         repo,
		users:        users,
		provider:     provider,
		planLimits:   planLimits,
		defaultOwner: defaultOwner,
	}
}

const folderSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newFolderID builds the unique per-gallery folder identifier: millisecond
// timestamp plus a 9-character random suffix. Repeated creates with the same
// title still land in distinct folders.
func newFolderID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = folderSuffixAlphabet[rand.Intn(len(folderSuffixAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// CreateGallery provisions the provider folder, persists the gallery and
// bumps the owner's gallery counter against the plan limit.
func (s *GalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (models.Gallery, error) {
	const op = "gallery_service.CreateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating gallery")

	ownerID := req.OwnerID
	if ownerID == uuid.Nil {
		ownerID = s.defaultOwner
	}

	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		log.Error("failed to load owner", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if limit := s.planLimits[owner.Plan]; limit > 0 && owner.GalleryCount >= limit {
		log.Warn("gallery limit reached",
			slog.String("plan", owner.Plan),
			slog.Int("gallery_count", owner.GalleryCount),
		)
		return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrQuotaExceeded)
	}

	folderPath := fmt.Sprintf("%s/gallery-%s", s.provider.BaseFolder(), newFolderID())

	if err := s.provider.CreateFolder(ctx, folderPath); err != nil {
		if !errors.Is(err, storage.ErrFolderExists) {
			metrics.ProviderCallsTotal.WithLabelValues("create_folder", "error").Inc()
			log.Error("failed to create provider folder", sl.Err(err))
			return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
		}
		// Remote folder already there: harmless, the row insert proceeds.
		log.Warn("provider folder already exists", slog.String("folder_path", folderPath))
	}
	metrics.ProviderCallsTotal.WithLabelValues("create_folder", "ok").Inc()

	gallery := models.Gallery{
		Title:       req.Title,
		Description: req.Description,
		FolderPath:  folderPath,
		OwnerID:     ownerID,
		IsActive:    true,
	}

	created, err := s.repo.SaveGallery(ctx, gallery)
	if err != nil {
		// The remote folder outlives a failed insert; delete it so the two
		// systems do not drift apart.
		if derr := s.provider.DeleteFolder(ctx, folderPath); derr != nil {
			log.Warn("failed to clean up provider folder", sl.Err(derr))
		}
		log.Error("failed to save gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created successfully", slog.String("id", created.ID.String()))
	return created, nil
}

// GetGallery returns one gallery with its items.
func (s *GalleryService) GetGallery(ctx context.Context, galleryID uuid.UUID) (models.Gallery, error) {
	const op = "gallery_service.GetGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	gallery, err := s.repo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		log.Error("failed to get gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// ListGalleries returns all galleries, with items embedded unless the caller
// opted out.
func (s *GalleryService) ListGalleries(ctx context.Context, withItems bool) ([]models.Gallery, error) {
	const op = "gallery_service.ListGalleries"
	log := s.log.With(slog.String("op", op))

	galleries, err := s.repo.GetGalleries(ctx, withItems)
	if err != nil {
		log.Error("failed to list galleries", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

// CheckDuplicateTitle reports whether a gallery with the exact title exists.
// Advisory only: a concurrent create between check and create still wins.
func (s *GalleryService) CheckDuplicateTitle(ctx context.Context, title string) (bool, error) {
	const op = "gallery_service.CheckDuplicateTitle"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", title),
	)

	exists, err := s.repo.ExistsByTitle(ctx, title)
	if err != nil {
		log.Error("failed to check title", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// AttachFolder sets the gallery's folder path (and description when given).
// If the gallery does not exist it is created as a placeholder under the
// fallback owner, keeping the supplied ID.
func (s *GalleryService) AttachFolder(ctx context.Context, req dto.AttachFolderRequest) (models.Gallery, error) {
	const op = "gallery_service.AttachFolder"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", req.GalleryID.String()),
	)

	updates := map[string]interface{}{
		"folder_path": req.FolderPath,
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	gallery, err := s.repo.UpdateGalleryFields(ctx, req.GalleryID, updates)
	if err == nil {
		log.Info("gallery folder updated")
		return gallery, nil
	}

	if !errors.Is(err, storage.ErrGalleryNotFound) {
		log.Error("failed to update gallery folder", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	description := req.Description
	if description == "" {
		description = "Untitled Gallery"
	}

	placeholder := models.Gallery{
		ID:          req.GalleryID,
		Title:       "Untitled Gallery",
		Description: description,
		FolderPath:  req.FolderPath,
		OwnerID:     s.defaultOwner,
		IsActive:    true,
	}

	created, err := s.repo.SavePlaceholder(ctx, placeholder)
	if err != nil {
		log.Error("failed to create placeholder gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("placeholder gallery created")
	return created, nil
}
