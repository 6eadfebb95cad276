package events

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRegistrationNotFound = errors.New("event registration not found")

type EventRepository interface {
	CreateRegistration(ctx context.Context, input EventRegistration) (EventRegistration, error)
	ListRegistrations(ctx context.Context, eventName string, limit, offset int) ([]EventRegistration, int64, error)
}

type postgresEventRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEventRepository(pool *pgxpool.Pool) EventRepository {
	return &postgresEventRepository{pool: pool}
}

func (r *postgresEventRepository) CreateRegistration(ctx context.Context, input EventRegistration) (EventRegistration, error) {
	query := `INSERT INTO event_registrations (event_name, email, organization, created_at)
              VALUES ($1, $2, $3, NOW())
              RETURNING id, event_name, email, COALESCE(organization, ''), created_at`

	var organization any
	if input.Organization != "" {
		organization = input.Organization
	}

	row := r.pool.QueryRow(ctx, query, input.EventName, input.Email, organization)

	var created EventRegistration
	if err := row.Scan(&created.ID, &created.EventName, &created.Email, &created.Organization, &created.CreatedAt); err != nil {
		return EventRegistration{}, err
	}

	return created, nil
}

func (r *postgresEventRepository) ListRegistrations(ctx context.Context, eventName string, limit, offset int) ([]EventRegistration, int64, error) {
	query := `SELECT id, event_name, email, COALESCE(organization, ''), created_at
              FROM event_registrations
              WHERE ($1 = '' OR event_name = $1)
              ORDER BY id DESC
              LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, eventName, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	registrations := make([]EventRegistration, 0)
	for rows.Next() {
		var reg EventRegistration
		if err := rows.Scan(&reg.ID, &reg.EventName, &reg.Email, &reg.Organization, &reg.CreatedAt); err != nil {
			return nil, 0, err
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM event_registrations WHERE ($1 = '' OR event_name = $1)", eventName)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return registrations, total, nil
}
