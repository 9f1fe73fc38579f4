package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

const profileColumns = `user_id, display_name, main_email, tee_shirt_size, created_at, updated_at`

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

// GetOrCreate returns the profile for userID, inserting a fresh one from the
// identity claims when it does not exist. Lazy creation is explicit here
// rather than hidden in a getter.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID, displayName, email string) (*domain.Profile, bool, error) {
	query := `
		INSERT INTO profiles (user_id, display_name, main_email, tee_shirt_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, userID, displayName, email, domain.TeeShirtSizeNotSpecified)
	if err != nil {
		return nil, false, err
	}
	rows, _ := result.RowsAffected()
	created := rows > 0

	prof, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return prof, created, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE main_email = $1`
	return r.get(ctx, query, email)
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, tee_shirt_size = $2, updated_at = NOW()
		WHERE user_id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, p.DisplayName, p.TeeShirtSize, p.UserID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) ListBySessionWish(ctx context.Context, sessionID string) ([]*domain.Profile, error) {
	query := `
		SELECT p.user_id, p.display_name, p.main_email, p.tee_shirt_size, p.created_at, p.updated_at
		FROM profiles p
		JOIN session_wishlist w ON w.user_id = p.user_id
		WHERE w.session_id = $1
		ORDER BY p.display_name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		p := &domain.Profile{}
		if err := rows.Scan(&p.UserID, &p.DisplayName, &p.MainEmail, &p.TeeShirtSize, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) get(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&p.UserID, &p.DisplayName, &p.MainEmail, &p.TeeShirtSize, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
