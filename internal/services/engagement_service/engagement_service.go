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

// EngagementService owns the partial updates of comments, reactions and
// shares. Creation happens only through the seed tooling; the API surface is
// PATCH-only for these resources.
type EngagementService struct {
	log  *slog.Logger
	repo repository.EngagementRepository
}

func NewEngagementService(log *slog.Logger, repo repository.EngagementRepository) *EngagementService {
	return &EngagementService{
		log:  log,
		repo: repo,
	}
}

func (s *EngagementService) UpdateComment(ctx context.Context, commentID uuid.UUID, req dto.UpdateCommentRequest) (models.Comment, error) {
	const op = "engagement_service.UpdateComment"
	log := s.log.With(
		slog.String("op", op),
		slog.String("comment_id", commentID.String()),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return models.Comment{}, fmt.Errorf("%s: no fields to update", op)
	}

	comment, err := s.repo.UpdateCommentFields(ctx, commentID, updates)
	if err != nil {
		log.Error("failed to update comment", sl.Err(err))
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comment updated")
	return comment, nil
}

func (s *EngagementService) UpdateReaction(ctx context.Context, reactionID uuid.UUID, req dto.UpdateReactionRequest) (models.Reaction, error) {
	const op = "engagement_service.UpdateReaction"
	log := s.log.With(
		slog.String("op", op),
		slog.String("reaction_id", reactionID.String()),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return models.Reaction{}, fmt.Errorf("%s: no fields to update", op)
	}

	reaction, err := s.repo.UpdateReactionFields(ctx, reactionID, updates)
	if err != nil {
		log.Error("failed to update reaction", sl.Err(err))
		return models.Reaction{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("reaction updated")
	return reaction, nil
}

func (s *EngagementService) UpdateShare(ctx context.Context, shareID uuid.UUID, req dto.UpdateShareRequest) (models.Share, error) {
	const op = "engagement_service.UpdateShare"
	log := s.log.With(
		slog.String("op", op),
		slog.String("share_id", shareID.String()),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return models.Share{}, fmt.Errorf("%s: no fields to update", op)
	}

	if req.ShareType != nil && !models.ValidShareType(models.ShareType(*req.ShareType)) {
		return models.Share{}, fmt.Errorf("%s: invalid share type %q", op, *req.ShareType)
	}

	share, err := s.repo.UpdateShareFields(ctx, shareID, updates)
	if err != nil {
		log.Error("failed to update share", sl.Err(err))
		return models.Share{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("share updated")
	return share, nil
}
