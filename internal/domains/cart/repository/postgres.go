package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// storeErr folds a driver failure into the transient-store taxonomy while
// keeping the underlying detail in the message.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", model.ErrStoreUnavailable, op, err)
}

// ListForUser implements RepositoryInterface.ListForUser.
func (r *postgresRepository) ListForUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := `
		SELECT id, user_id, book_id, quantity, added_at
		FROM cart_items
		WHERE user_id = $1
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storeErr("list cart items", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.BookID,
			&item.Quantity,
			&item.AddedAt,
		)
		if err != nil {
			return nil, storeErr("scan cart item", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate cart items", err)
	}

	return items, nil
}

// Create implements RepositoryInterface.Create.
// No conflict check: duplicate (user, book) rows are a known denormalization
// repaired at read time.
func (r *postgresRepository) Create(ctx context.Context, userID, bookID string, quantity int) (model.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, book_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, book_id, quantity, added_at
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, userID, bookID, quantity).Scan(
		&item.ID,
		&item.UserID,
		&item.BookID,
		&item.Quantity,
		&item.AddedAt,
	)
	if err != nil {
		return model.CartItem{}, storeErr("create cart item", err)
	}

	return item, nil
}

// UpdateQuantity implements RepositoryInterface.UpdateQuantity.
func (r *postgresRepository) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, itemID, quantity)
	if err != nil {
		return storeErr("update cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", model.ErrItemNotFound, itemID)
	}

	return nil
}

// DeleteByID implements RepositoryInterface.DeleteByID.
func (r *postgresRepository) DeleteByID(ctx context.Context, itemID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, itemID)
	if err != nil {
		return storeErr("delete cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", model.ErrItemNotFound, itemID)
	}

	return nil
}

// ListFragmented implements RepositoryInterface.ListFragmented.
func (r *postgresRepository) ListFragmented(ctx context.Context) ([]FragmentedGroup, error) {
	query := `
		SELECT user_id, book_id, COUNT(*) AS rows
		FROM cart_items
		GROUP BY user_id, book_id
		HAVING COUNT(*) > 1
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list fragmented groups", err)
	}
	defer rows.Close()

	var groups []FragmentedGroup
	for rows.Next() {
		var g FragmentedGroup
		if err := rows.Scan(&g.UserID, &g.BookID, &g.Rows); err != nil {
			return nil, storeErr("scan fragmented group", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate fragmented groups", err)
	}

	return groups, nil
}

// CompactGroup implements RepositoryInterface.CompactGroup.
// Runs in a transaction so a reader never observes the group half-collapsed.
func (r *postgresRepository) CompactGroup(ctx context.Context, userID, bookID string) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var total int
		err := tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id = $1 AND book_id = $2`,
			userID, bookID,
		).Scan(&total)
		if err != nil {
			return fmt.Errorf("sum group quantity: %w", err)
		}

		if total == 0 {
			// group vanished between listing and compaction
			return nil
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM cart_items WHERE user_id = $1 AND book_id = $2`,
			userID, bookID,
		); err != nil {
			return fmt.Errorf("delete group rows: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO cart_items (user_id, book_id, quantity) VALUES ($1, $2, $3)`,
			userID, bookID, total,
		); err != nil {
			return fmt.Errorf("insert compacted row: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			return err
		}
		return storeErr("compact group", err)
	}

	return nil
}

// PurgeOlderThan implements RepositoryInterface.PurgeOlderThan.
func (r *postgresRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query := `DELETE FROM cart_items WHERE added_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, storeErr("purge stale cart items", err)
	}

	return int(tag.RowsAffected()), nil
}
