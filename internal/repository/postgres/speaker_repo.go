package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

// GetOrCreate inserts the speaker unless a record for the email exists.
// ON CONFLICT DO NOTHING keeps the first-written name and profile link: a
// later submission with a different name does not change the record.
func (r *speakerRepository) GetOrCreate(ctx context.Context, email, name, profileUserID string) (*domain.Speaker, bool, error) {
	query := `
		INSERT INTO speakers (email, name, profile_user_id, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NOW())
		ON CONFLICT (email) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, email, name, profileUserID)
	if err != nil {
		return nil, false, err
	}
	rows, _ := result.RowsAffected()
	created := rows > 0

	sp, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return sp, created, nil
}

func (r *speakerRepository) GetByEmail(ctx context.Context, email string) (*domain.Speaker, error) {
	query := `
		SELECT email, name, COALESCE(profile_user_id, ''), created_at
		FROM speakers
		WHERE email = $1
	`
	sp := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&sp.Email, &sp.Name, &sp.ProfileUserID, &sp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (r *speakerRepository) GetByName(ctx context.Context, name string) (*domain.Speaker, error) {
	query := `
		SELECT email, name, COALESCE(profile_user_id, ''), created_at
		FROM speakers
		WHERE name = $1
		ORDER BY created_at ASC
		LIMIT 1
	`
	sp := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, name).
		Scan(&sp.Email, &sp.Name, &sp.ProfileUserID, &sp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}
