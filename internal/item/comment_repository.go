package item

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepository defines methods for accessing comment data from storage.
type CommentRepository interface {
	Create(ctx context.Context, cm *Comment) error
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*Comment, error)
}

type pgxCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCommentRepository creates a new CommentRepository implementation using pgxpool.
func NewPgxCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &pgxCommentRepository{pool: pool}
}

func (r *pgxCommentRepository) Create(ctx context.Context, cm *Comment) error {
	const query = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, now())
		RETURNING id, created,
			(SELECT name FROM users WHERE id = $3)
	`

	if err := r.pool.QueryRow(ctx, query, cm.Text, cm.ItemID, cm.AuthorID).
		Scan(&cm.ID, &cm.Created, &cm.AuthorName); err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}

	return nil
}

func (r *pgxCommentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("c.id", "c.text", "c.item_id", "c.author_id", "u.name", "c.created").
		From("comments c").
		Join("users u ON c.author_id = u.id").
		Where(squirrel.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(&cm.ID, &cm.Text, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Created); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, &cm)
	}

	return comments, rows.Err()
}
