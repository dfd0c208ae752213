package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/storage"
)

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const galleryColumns = "id, title, description, folder_path, owner_id, is_active, created_at, updated_at"

func scanGallery(row pgx.Row) (models.Gallery, error) {
	var g models.Gallery
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.FolderPath,
		&g.OwnerID,
		&g.IsActive,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return g, err
}

// SaveGallery inserts the gallery row and bumps the owning user's gallery
// counter in one transaction, so a failed insert never leaves the counter off.
func (r *GalleryRepo) SaveGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	const op = "repository.gallery_repository.SaveGallery"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Insert("galleries").
		Columns("title", "description", "folder_path", "owner_id", "is_active").
		Values(gallery.Title, gallery.Description, gallery.FolderPath, gallery.OwnerID, gallery.IsActive).
		Suffix("RETURNING " + galleryColumns).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanGallery(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Update("users").
		Set("gallery_count", sq.Expr("gallery_count + 1")).
		Where(sq.Eq{"id": gallery.OwnerID}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: failed to increment gallery count: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return created, nil
}

// SavePlaceholder inserts a gallery under a caller-chosen ID. The folder
// association endpoint uses it when asked to attach a folder to a gallery
// that does not exist yet. No counter bump: placeholders belong to the
// configured fallback owner, not a plan-limited creation flow.
func (r *GalleryRepo) SavePlaceholder(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	const op = "repository.gallery_repository.SavePlaceholder"

	query, args, err := r.sb.Insert("galleries").
		Columns("id", "title", "description", "folder_path", "owner_id", "is_active").
		Values(gallery.ID, gallery.Title, gallery.Description, gallery.FolderPath, gallery.OwnerID, gallery.IsActive).
		Suffix("RETURNING " + galleryColumns).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// GetGalleryByID returns one gallery with its items embedded.
func (r *GalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	const op = "repository.gallery_repository.GetGalleryByID"

	query, args, err := r.sb.Select(
		"id", "title", "description", "folder_path", "owner_id", "is_active", "created_at", "updated_at",
	).
		From("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	items, err := r.itemsByGallery(ctx, gallery.ID)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}
	gallery.Items = items

	return gallery, nil
}

// GetGalleries returns every gallery, newest first, optionally with each
// gallery's items embedded.
func (r *GalleryRepo) GetGalleries(ctx context.Context, withItems bool) ([]models.Gallery, error) {
	const op = "repository.gallery_repository.GetGalleries"

	query, args, err := r.sb.Select(
		"id", "title", "description", "folder_path", "owner_id", "is_active", "created_at", "updated_at",
	).
		From("galleries").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var galleries []models.Gallery
	for rows.Next() {
		gallery, err := scanGallery(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		galleries = append(galleries, gallery)
	}

	if !withItems {
		return galleries, nil
	}

	for i := range galleries {
		items, err := r.itemsByGallery(ctx, galleries[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		galleries[i].Items = items
	}

	return galleries, nil
}

func (r *GalleryRepo) itemsByGallery(ctx context.Context, galleryID uuid.UUID) ([]models.Item, error) {
	query, args, err := r.sb.Select("id", "title", "media_url", "gallery_id", "created_at").
		From("items").
		Where(sq.Eq{"gallery_id": galleryID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error execute query: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.MediaURL, &item.GalleryID, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// ExistsByTitle reports whether any gallery carries the exact title. Nothing
// stops a matching create racing past this check; there is no unique
// constraint on titles.
func (r *GalleryRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	const op = "repository.gallery_repository.ExistsByTitle"

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM galleries WHERE title = $1)`,
		title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// UpdateGalleryFields applies a partial update and returns the new row.
// Only the folder path and description may change this way.
func (r *GalleryRepo) UpdateGalleryFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Gallery, error) {
	const op = "repository.gallery_repository.UpdateGalleryFields"

	allowedFields := map[string]bool{
		"folder_path": true,
		"description": true,
	}

	if len(updates) == 0 {
		return models.Gallery{}, fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := r.sb.Update("galleries").
		Set("updated_at", sq.Expr("NOW()"))

	for field, value := range updates {
		if !allowedFields[field] {
			return models.Gallery{}, fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + galleryColumns).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}
