package services

import (
	"context"
	"fmt"
	"log/slog"

	"snapfolio/internal/lib/logger/sl"
	"snapfolio/internal/repository"
	"snapfolio/internal/transport/http/dto"
)

type DashboardService struct {
	log  *slog.Logger
	repo repository.StatsRepository
}

func NewDashboardService(log *slog.Logger, repo repository.StatsRepository) *DashboardService {
	return &DashboardService{
		log:  log,
		repo: repo,
	}
}

// Summary runs four independent count queries and returns them together.
// Each count reflects the store at the moment of its own query; a write
// landing between two counts shows up in one and not the other.
func (s *DashboardService) Summary(ctx context.Context) (dto.DashboardSummaryResponse, error) {
	const op = "dashboard_service.Summary"
	log := s.log.With(slog.String("op", op))

	galleryCount, err := s.repo.CountGalleries(ctx)
	if err != nil {
		log.Error("failed to count galleries", sl.Err(err))
		return dto.DashboardSummaryResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	itemCount, err := s.repo.CountItems(ctx)
	if err != nil {
		log.Error("failed to count items", sl.Err(err))
		return dto.DashboardSummaryResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	userCount, err := s.repo.CountUsers(ctx)
	if err != nil {
		log.Error("failed to count users", sl.Err(err))
		return dto.DashboardSummaryResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	commentCount, err := s.repo.CountComments(ctx)
	if err != nil {
		log.Error("failed to count comments", sl.Err(err))
		return dto.DashboardSummaryResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.DashboardSummaryResponse{
		GalleryCount: galleryCount,
		ItemCount:    itemCount,
		UserCount:    userCount,
		CommentCount: commentCount,
	}, nil
}
