package repository

import (
	"context"

	"snapfolio/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	SaveOwner(ctx context.Context, owner models.Owner) (uuid.UUID, error)
	SaveClient(ctx context.Context, client models.Client) (uuid.UUID, error)
}

type GalleryRepository interface {
	SaveGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error)
	SavePlaceholder(ctx context.Context, gallery models.Gallery) (models.Gallery, error)
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error)
	GetGalleries(ctx context.Context, withItems bool) ([]models.Gallery, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	UpdateGalleryFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Gallery, error)
}

type ItemRepository interface {
	SaveItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItemFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Item, error)
}

type EngagementRepository interface {
	SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	SaveReaction(ctx context.Context, reaction models.Reaction) (models.Reaction, error)
	SaveShare(ctx context.Context, share models.Share) (models.Share, error)
	UpdateCommentFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Comment, error)
	UpdateReactionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Reaction, error)
	UpdateShareFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Share, error)
}

// StatsRepository backs the dashboard summary. Each count is an independent
// query reflecting the store at its own moment; no consistency across them.
type StatsRepository interface {
	CountGalleries(ctx context.Context) (int, error)
	CountItems(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountComments(ctx context.Context) (int, error)
}

// AdminRepository powers the development wipe script.
type AdminRepository interface {
	WipeAll(ctx context.Context) error
}
