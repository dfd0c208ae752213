package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/lib/logger/sl"
	"snapfolio/internal/repository"
	"snapfolio/internal/transport/http/dto"
)

type ItemService struct {
	log  *slog.Logger
	repo repository.ItemRepository
}

func NewItemService(log *slog.Logger, repo repository.ItemRepository) *ItemService {
	return &ItemService{
		log:  log,
		repo: repo,
	}
}

// CreateItem stores the metadata row for an already-uploaded asset.
func (s *ItemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (models.Item, error) {
	const op = "item_service.CreateItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", req.GalleryID.String()),
	)

	item := models.Item{
		Title:     req.Title,
		MediaURL:  req.MediaURL,
		GalleryID: req.GalleryID,
	}

	created, err := s.repo.SaveItem(ctx, item)
	if err != nil {
		log.Error("failed to save item", sl.Err(err))
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item created", slog.String("id", created.ID.String()))
	return created, nil
}

// UpdateItem applies the set fields of a validated PATCH body.
func (s *ItemService) UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateItemRequest) (models.Item, error) {
	const op = "item_service.UpdateItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return models.Item{}, fmt.Errorf("%s: no fields to update", op)
	}

	item, err := s.repo.UpdateItemFields(ctx, itemID, updates)
	if err != nil {
		log.Error("failed to update item", sl.Err(err))
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item updated")
	return item, nil
}
