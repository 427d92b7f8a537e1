package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing item request data from storage.
type Repository interface {
	Create(ctx context.Context, req *ItemRequest) error
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]*ItemRequest, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	const query = `
		INSERT INTO item_requests (description, requestor_id, created)
		VALUES ($1, $2, now())
		RETURNING id, created
	`

	if err := r.pool.QueryRow(ctx, query, req.Description, req.RequestorID).
		Scan(&req.ID, &req.Created); err != nil {
		return fmt.Errorf("create item request failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	const query = `
		SELECT id, description, requestor_id, created
		FROM item_requests
		WHERE id = $1
	`

	var req ItemRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Description, &req.RequestorID, &req.Created,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}

	return &req, nil
}

func (r *pgxRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check item request failed: %w", err)
	}

	return exists, nil
}

func (r *pgxRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "description", "requestor_id", "created").
		From("item_requests").
		Where(squirrel.Eq{"requestor_id": requestorID}).
		OrderBy("created DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	return r.queryRequests(ctx, query, args...)
}

func (r *pgxRepository) ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "description", "requestor_id", "created").
		From("item_requests").
		Where(squirrel.NotEq{"requestor_id": requestorID}).
		OrderBy("created DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list other requests query failed: %w", err)
	}

	return r.queryRequests(ctx, query, args...)
}

func (r *pgxRepository) queryRequests(ctx context.Context, query string, args ...any) ([]*ItemRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, &req)
	}

	return requests, rows.Err()
}
