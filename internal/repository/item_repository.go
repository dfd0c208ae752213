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

type ItemRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const itemColumns = "id, title, media_url, gallery_id, created_at"

func scanItem(row pgx.Row) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Title, &item.MediaURL, &item.GalleryID, &item.CreatedAt)
	return item, err
}

func (r *ItemRepo) SaveItem(ctx context.Context, item models.Item) (models.Item, error) {
	const op = "repository.item_repository.SaveItem"

	query, args, err := r.sb.Insert("items").
		Columns("title", "media_url", "gallery_id").
		Values(item.Title, item.MediaURL, item.GalleryID).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// UpdateItemFields applies a partial update built from the validated PATCH
// body. Last write wins; no concurrency token.
func (r *ItemRepo) UpdateItemFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Item, error) {
	const op = "repository.item_repository.UpdateItemFields"

	allowedFields := map[string]bool{
		"title":      true,
		"media_url":  true,
		"gallery_id": true,
	}

	if len(updates) == 0 {
		return models.Item{}, fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := r.sb.Update("items")

	for field, value := range updates {
		if !allowedFields[field] {
			return models.Item{}, fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	item, err := scanItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Item{}, fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
		}
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}
