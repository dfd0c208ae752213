// Package seeder fills a development database with fake but coherent data.
// All writes are strictly sequential: later stages reference IDs produced by
// earlier ones, so ordering matters.
package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fatih/color"
	"github.com/google/uuid"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/repository"
)

const (
	initialUsers      = 3
	extraClients      = 5
	galleriesPerOwner = 2
	itemsPerGallery   = 5
	engagedItems      = 3
)

// actor pairs a user row with its owner or client profile row.
type actor struct {
	UserID    uuid.UUID
	ProfileID uuid.UUID
}

type Seeder struct {
	log  *slog.Logger
	repo *repository.Repository
}

func New(log *slog.Logger, repo *repository.Repository) *Seeder {
	return &Seeder{
		log:  log,
		repo: repo,
	}
}

// Wipe deletes every row, children first, so foreign keys never block.
func (s *Seeder) Wipe(ctx context.Context) error {
	const op = "seeder.Wipe"

	if err := s.repo.Admin.WipeAll(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	color.Yellow("✓ wiped all data")

	return nil
}

// Seed wipes the database and rebuilds it stage by stage.
func (s *Seeder) Seed(ctx context.Context) error {
	const op = "seeder.Seed"

	if err := s.Wipe(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ownerIDs, clientIDs, err := s.seedUsers(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	galleryIDs, err := s.seedGalleries(ctx, ownerIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	itemIDs, err := s.seedItems(ctx, galleryIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.seedEngagement(ctx, clientIDs, itemIDs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	color.Green("✓ seeding complete")

	return nil
}

// seedUsers creates the base accounts plus the extra clients. The first of
// the initial users becomes the owner, the rest become clients.
func (s *Seeder) seedUsers(ctx context.Context) (owners, clients []actor, err error) {
	for i := 0; i < initialUsers+extraClients; i++ {
		role := models.RoleClient
		plan := "free"
		if i == 0 {
			role = models.RoleOwner
			plan = "pro"
		}

		userID, err := s.repo.User.SaveUser(ctx, models.User{
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Role:  role,
			Plan:  plan,
		})
		if err != nil {
			return nil, nil, err
		}

		if role == models.RoleOwner {
			ownerID, err := s.repo.User.SaveOwner(ctx, models.Owner{
				UserID:      userID,
				ContactInfo: gofakeit.Phone(),
				Message:     gofakeit.Sentence(8),
				SocialMedia: models.SocialLinks{
					{Platform: "instagram", URL: gofakeit.URL(), IsVisible: true},
					{Platform: "twitter", URL: gofakeit.URL(), IsVisible: false},
				},
			})
			if err != nil {
				return nil, nil, err
			}
			owners = append(owners, actor{UserID: userID, ProfileID: ownerID})
		} else {
			clientID, err := s.repo.User.SaveClient(ctx, models.Client{UserID: userID})
			if err != nil {
				return nil, nil, err
			}
			clients = append(clients, actor{UserID: userID, ProfileID: clientID})
		}
	}

	color.Cyan("✓ seeded %d users (%d owners, %d clients)",
		initialUsers+extraClients, len(owners), len(clients))

	return owners, clients, nil
}

// seedGalleries creates galleries with faked folder paths; the media provider
// is never called here.
func (s *Seeder) seedGalleries(ctx context.Context, owners []actor) ([]models.Gallery, error) {
	var galleries []models.Gallery

	for _, owner := range owners {
		for i := 0; i < galleriesPerOwner; i++ {
			title := gofakeit.HipsterWord() + " " + gofakeit.Word()

			gallery, err := s.repo.Gallery.SaveGallery(ctx, models.Gallery{
				Title:       title,
				Description: gofakeit.Sentence(6),
				FolderPath:  fmt.Sprintf("snapfolio/gallery-%s", gofakeit.LetterN(9)),
				OwnerID:     owner.UserID,
				IsActive:    true,
			})
			if err != nil {
				return nil, err
			}

			galleries = append(galleries, gallery)
		}
	}

	color.Cyan("✓ seeded %d galleries", len(galleries))

	return galleries, nil
}

func (s *Seeder) seedItems(ctx context.Context, galleries []models.Gallery) ([]models.Item, error) {
	var items []models.Item

	for _, gallery := range galleries {
		for i := 0; i < itemsPerGallery; i++ {
			item, err := s.repo.Item.SaveItem(ctx, models.Item{
				Title:     gofakeit.Word(),
				MediaURL:  gofakeit.ImageURL(640, 480),
				GalleryID: gallery.ID,
			})
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}
	}

	color.Cyan("✓ seeded %d items", len(items))

	return items, nil
}

// seedEngagement leaves one comment, one reaction and one share per client
// on each of the first few items.
func (s *Seeder) seedEngagement(ctx context.Context, clients []actor, items []models.Item) error {
	n := engagedItems
	if len(items) < n {
		n = len(items)
	}

	var comments, reactions, shares int

	shareTypes := []models.ShareType{
		models.ShareTypePublic,
		models.ShareTypePrivate,
		models.ShareTypeInvite,
	}

	for _, client := range clients {
		for i := 0; i < n; i++ {
			item := items[i]

			if _, err := s.repo.Engagement.SaveComment(ctx, models.Comment{
				Text:     gofakeit.Sentence(5),
				ItemID:   item.ID,
				ClientID: client.ProfileID,
			}); err != nil {
				return err
			}
			comments++

			if _, err := s.repo.Engagement.SaveReaction(ctx, models.Reaction{
				Emoji:    gofakeit.Emoji(),
				Count:    gofakeit.Number(1, 25),
				ItemID:   item.ID,
				ClientID: client.ProfileID,
			}); err != nil {
				return err
			}
			reactions++

			if _, err := s.repo.Engagement.SaveShare(ctx, models.Share{
				ShareType: shareTypes[i%len(shareTypes)],
				ShareLink: gofakeit.URL(),
				ItemID:    item.ID,
				ClientID:  client.ProfileID,
			}); err != nil {
				return err
			}
			shares++
		}
	}

	color.Cyan("✓ seeded %d comments, %d reactions, %d shares", comments, reactions, shares)

	return nil
}
