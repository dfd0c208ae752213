package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type AdminRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// WipeAll deletes every row, children before parents so foreign keys hold.
// Development tooling only; there is no per-entity delete endpoint.
func (r *AdminRepo) WipeAll(ctx context.Context) error {
	const op = "repository.admin_repository.WipeAll"

	tables := []string{
		"shares",
		"reactions",
		"comments",
		"items",
		"galleries",
		"clients",
		"owners",
		"users",
	}

	for _, table := range tables {
		query, args, err := r.sb.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: failed to wipe %s: %w", op, table, err)
		}
	}

	return nil
}
