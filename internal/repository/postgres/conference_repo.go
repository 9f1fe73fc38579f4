package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const conferenceColumns = `
	id, organizer_id, name, description, topics, city,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	month, max_attendees, seats_available, created_at, updated_at
`

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (organizer_id, name, description, topics, city,
			start_date, end_date, month, max_attendees, seats_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.OrganizerID, c.Name, c.Description, pq.Array(c.Topics), c.City,
		nullableDate(c.StartDate), nullableDate(c.EndDate),
		c.Month, c.MaxAttendees, c.SeatsAvailable, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	query := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, organizerID)
}

func (r *conferenceRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	query := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE id = ANY($1)
		ORDER BY name ASC
	`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *conferenceRepository) Update(ctx context.Context, c *domain.Conference) error {
	query := `
		UPDATE conferences
		SET name = $1, description = $2, topics = $3, city = $4,
			start_date = $5, end_date = $6, month = $7, max_attendees = $8,
			seats_available = $9, updated_at = NOW()
		WHERE id = $10
	`
	result, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Description, pq.Array(c.Topics), c.City,
		nullableDate(c.StartDate), nullableDate(c.EndDate),
		c.Month, c.MaxAttendees, c.SeatsAvailable, c.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conferenceRepository) Query(ctx context.Context, fs *domain.FilterSet) ([]*domain.Conference, error) {
	conds, args := appendClauses(fs.Primary, nil, nil)
	query := fmt.Sprintf(`SELECT %s FROM conferences %s %s`,
		conferenceColumns, whereSQL(conds), orderSQL(fs))
	return r.list(ctx, query, args...)
}

func (r *conferenceRepository) ListAlmostSoldOutNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name FROM conferences
		WHERE seats_available > 0 AND seats_available <= 5
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *conferenceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	return confs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var startNull, endNull sql.NullString
	err := row.Scan(
		&c.ID, &c.OrganizerID, &c.Name, &c.Description, pq.Array(&c.Topics), &c.City,
		&startNull, &endNull, &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startNull.Valid {
		c.StartDate = &startNull.String
	}
	if endNull.Valid {
		c.EndDate = &endNull.String
	}
	return c, nil
}

func nullableDate(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
