package repository

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	User       UserRepository
	Gallery    GalleryRepository
	Item       ItemRepository
	Engagement EngagementRepository
	Stats      StatsRepository
	Admin      AdminRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Gallery:    NewGalleryRepository(db),
		Item:       NewItemRepository(db),
		Engagement: NewEngagementRepository(db),
		Stats:      NewStatsRepository(db),
		Admin:      NewAdminRepository(db),
	}
}
