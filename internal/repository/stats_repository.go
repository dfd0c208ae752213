package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type StatsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *StatsRepo) CountGalleries(ctx context.Context) (int, error) {
	return r.count(ctx, "galleries")
}

func (r *StatsRepo) CountItems(ctx context.Context) (int, error) {
	return r.count(ctx, "items")
}

func (r *StatsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "users")
}

func (r *StatsRepo) CountComments(ctx context.Context) (int, error) {
	return r.count(ctx, "comments")
}

func (r *StatsRepo) count(ctx context.Context, table string) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error execute query: %w (SQL: %s)", err, query)
	}

	return count, nil
}
