package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

func (r *wishlistRepository) Add(ctx context.Context, userID, sessionID string) error {
	query := `
		INSERT INTO session_wishlist (user_id, session_id, created_at)
		VALUES ($1, $2, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query, userID, sessionID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: session already on wishlist", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *wishlistRepository) ListSessionIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT session_id FROM session_wishlist
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
