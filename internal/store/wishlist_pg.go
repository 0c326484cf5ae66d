package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"vinylapi/internal/entity"
	"vinylapi/internal/usecase"
)

type WishlistPG struct {
	db *pgxpool.Pool
}

func NewWishlistPG(db *pgxpool.Pool) *WishlistPG {
	return &WishlistPG{db: db}
}

func (r *WishlistPG) ListByUser(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	const query = `
	SELECT id, user_id, external_id, name, artist, year, image_url, external_url, created_at
	FROM wishlist
	WHERE user_id = $1
	ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.WishlistItem
	for rows.Next() {
		var item entity.WishlistItem
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ExternalID,
			&item.Name,
			&item.Artist,
			&item.Year,
			&item.ImageURL,
			&item.ExternalURL,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *WishlistPG) ListExternalIDs(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT external_id FROM wishlist WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *WishlistPG) Add(ctx context.Context, item *entity.WishlistItem) error {
	const query = `
	INSERT INTO wishlist (id, user_id, external_id, name, artist, year, image_url, external_url)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		item.UserID,
		item.ExternalID,
		item.Name,
		item.Artist,
		item.Year,
		item.ImageURL,
		item.ExternalURL,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return usecase.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Remove is idempotent: deleting an id that is already gone affects zero
// rows and is still a success.
func (r *WishlistPG) Remove(ctx context.Context, userID, itemID string) error {
	const query = `DELETE FROM wishlist WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(ctx, query, itemID, userID)
	return err
}
