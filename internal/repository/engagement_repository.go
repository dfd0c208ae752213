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

// EngagementRepo persists the client-facing activity attached to items:
// comments, emoji reactions and shares.
type EngagementRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewEngagementRepository(db *pgxpool.Pool) *EngagementRepo {
	return &EngagementRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *EngagementRepo) SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	const op = "repository.engagement_repository.SaveComment"

	query, args, err := r.sb.Insert("comments").
		Columns("text", "item_id", "client_id").
		Values(comment.Text, comment.ItemID, comment.ClientID).
		Suffix("RETURNING id, text, item_id, client_id, created_at").
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	var created models.Comment
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&created.ID, &created.Text, &created.ItemID, &created.ClientID, &created.CreatedAt,
	)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *EngagementRepo) SaveReaction(ctx context.Context, reaction models.Reaction) (models.Reaction, error) {
	const op = "repository.engagement_repository.SaveReaction"

	query, args, err := r.sb.Insert("reactions").
		Columns("emoji", "count", "item_id", "client_id").
		Values(reaction.Emoji, reaction.Count, reaction.ItemID, reaction.ClientID).
		Suffix("RETURNING id, emoji, count, item_id, client_id, created_at").
		ToSql()
	if err != nil {
		return models.Reaction{}, fmt.Errorf("%s: %w", op, err)
	}

	var created models.Reaction
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&created.ID, &created.Emoji, &created.Count, &created.ItemID, &created.ClientID, &created.CreatedAt,
	)
	if err != nil {
		return models.Reaction{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *EngagementRepo) SaveShare(ctx context.Context, share models.Share) (models.Share, error) {
	const op = "repository.engagement_repository.SaveShare"

	query, args, err := r.sb.Insert("shares").
		Columns("share_type", "share_link", "item_id", "client_id").
		Values(share.ShareType, share.ShareLink, share.ItemID, share.ClientID).
		Suffix("RETURNING id, share_type, share_link, item_id, client_id, created_at").
		ToSql()
	if err != nil {
		return models.Share{}, fmt.Errorf("%s: %w", op, err)
	}

	var created models.Share
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&created.ID, &created.ShareType, &created.ShareLink, &created.ItemID, &created.ClientID, &created.CreatedAt,
	)
	if err != nil {
		return models.Share{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *EngagementRepo) UpdateCommentFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Comment, error) {
	const op = "repository.engagement_repository.UpdateCommentFields"

	query, args, err := r.partialUpdate("comments", id, updates,
		map[string]bool{"text": true},
		"id, text, item_id, client_id, created_at")
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	var comment models.Comment
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&comment.ID, &comment.Text, &comment.ItemID, &comment.ClientID, &comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Comment{}, fmt.Errorf("%s: %w", op, storage.ErrCommentNotFound)
		}
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

func (r *EngagementRepo) UpdateReactionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Reaction, error) {
	const op = "repository.engagement_repository.UpdateReactionFields"

	query, args, err := r.partialUpdate("reactions", id, updates,
		map[string]bool{"emoji": true, "count": true},
		"id, emoji, count, item_id, client_id, created_at")
	if err != nil {
		return models.Reaction{}, fmt.Errorf("%s: %w", op, err)
	}

	var reaction models.Reaction
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&reaction.ID, &reaction.Emoji, &reaction.Count, &reaction.ItemID, &reaction.ClientID, &reaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Reaction{}, fmt.Errorf("%s: %w", op, storage.ErrReactionNotFound)
		}
		return models.Reaction{}, fmt.Errorf("%s: %w", op, err)
	}

	return reaction, nil
}

func (r *EngagementRepo) UpdateShareFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Share, error) {
	const op = "repository.engagement_repository.UpdateShareFields"

	query, args, err := r.partialUpdate("shares", id, updates,
		map[string]bool{"share_type": true, "share_link": true},
		"id, share_type, share_link, item_id, client_id, created_at")
	if err != nil {
		return models.Share{}, fmt.Errorf("%s: %w", op, err)
	}

	var share models.Share
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&share.ID, &share.ShareType, &share.ShareLink, &share.ItemID, &share.ClientID, &share.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Share{}, fmt.Errorf("%s: %w", op, storage.ErrShareNotFound)
		}
		return models.Share{}, fmt.Errorf("%s: %w", op, err)
	}

	return share, nil
}

func (r *EngagementRepo) partialUpdate(table string, id uuid.UUID, updates map[string]interface{}, allowed map[string]bool, returning string) (string, []interface{}, error) {
	if len(updates) == 0 {
		return "", nil, fmt.Errorf("no fields to update")
	}

	updateBuilder := r.sb.Update(table)

	for field, value := range updates {
		if !allowed[field] {
			return "", nil, fmt.Errorf("field '%s' is not allowed for update", field)
		}
		updateBuilder = updateBuilder.Set(field, value)
	}

	return updateBuilder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning).
		ToSql()
}
