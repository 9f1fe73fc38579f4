package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferencecentral/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register records attendance and decrements the conference seat count in a
// single transaction. The conference row is locked first so two users racing
// for the last seat serialize on it.
func (r *registrationRepository) Register(ctx context.Context, conferenceID, userID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM conference_registrations WHERE conference_id = $1 AND user_id = $2)`,
		conferenceID, userID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: already registered for this conference", domain.ErrConflict)
	}
	if seats <= 0 {
		return fmt.Errorf("%w: there are no seats available", domain.ErrConflict)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO conference_registrations (conference_id, user_id, created_at) VALUES ($1, $2, NOW())`,
		conferenceID, userID,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Unregister removes attendance and restores the seat inside one transaction.
// An absent registration commits without touching the seat count and reports
// false.
func (r *registrationRepository) Unregister(ctx context.Context, conferenceID, userID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var confExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM conferences WHERE id = $1 FOR UPDATE)`,
		conferenceID,
	).Scan(&confExists)
	if err != nil {
		return false, err
	}
	if !confExists {
		return false, domain.ErrNotFound
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM conference_registrations WHERE conference_id = $1 AND user_id = $2`,
		conferenceID, userID,
	)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *registrationRepository) ListConferenceIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT conference_id FROM conference_registrations
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
