package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const sessionColumns = `
	id, conference_id, name, speaker_email,
	to_char(date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI'),
	duration, type_of_session, highlights, created_at
`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, name, speaker_email, date, start_time,
			duration, type_of_session, highlights, created_at)
		VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.Name, s.SpeakerEmail, s.Date, s.StartTime,
		s.Duration, s.TypeOfSession, s.Highlights, s.CreatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE conference_id = $1
		ORDER BY name ASC
	`
	return r.list(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE conference_id = $1 AND type_of_session = $2
		ORDER BY name ASC
	`
	return r.list(ctx, query, conferenceID, typeOfSession)
}

func (r *sessionRepository) ListByDate(ctx context.Context, conferenceID, date string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE conference_id = $1 AND date = $2::date
		ORDER BY start_time ASC
	`
	return r.list(ctx, query, conferenceID, date)
}

func (r *sessionRepository) ListBySpeakerName(ctx context.Context, speakerName string) ([]*domain.Session, error) {
	query := `
		SELECT s.id, s.conference_id, s.name, s.speaker_email,
			to_char(s.date, 'YYYY-MM-DD'), to_char(s.start_time, 'HH24:MI'),
			s.duration, s.type_of_session, s.highlights, s.created_at
		FROM sessions s
		JOIN speakers sp ON sp.email = s.speaker_email
		WHERE sp.name = $1
		ORDER BY s.name ASC
	`
	return r.list(ctx, query, speakerName)
}

func (r *sessionRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = ANY($1)
		ORDER BY name ASC
	`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *sessionRepository) CountBySpeaker(ctx context.Context, conferenceID, speakerEmail string) (int, error) {
	query := `SELECT COUNT(*) FROM sessions WHERE conference_id = $1 AND speaker_email = $2`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, conferenceID, speakerEmail).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sessionRepository) Query(ctx context.Context, conferenceID string, fs *domain.FilterSet) ([]*domain.Session, error) {
	conds := []string{"conference_id = $1"}
	args := []any{conferenceID}
	conds, args = appendClauses(fs.Primary, conds, args)
	query := fmt.Sprintf(`SELECT %s FROM sessions %s %s`,
		sessionColumns, whereSQL(conds), orderSQL(fs))
	return r.list(ctx, query, args...)
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.Name, &s.SpeakerEmail,
		&s.Date, &s.StartTime, &s.Duration, &s.TypeOfSession, &s.Highlights,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
