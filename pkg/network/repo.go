package network

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSignupNotFound = errors.New("network signup not found")

type NetworkRepository interface {
	CreateSignup(ctx context.Context, input NetworkSignup) (NetworkSignup, error)
	GetSignupByID(ctx context.Context, id int64) (NetworkSignup, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListSignups(ctx context.Context, role string, limit, offset int) ([]NetworkSignup, int64, error)
}

type postgresNetworkRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresNetworkRepository(pool *pgxpool.Pool) NetworkRepository {
	return &postgresNetworkRepository{pool: pool}
}

func (r *postgresNetworkRepository) CreateSignup(ctx context.Context, input NetworkSignup) (NetworkSignup, error) {
	query := `INSERT INTO network_signups (name, email, role, expertise_areas, cv_key, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING id, name, email, role, COALESCE(expertise_areas, ''), COALESCE(cv_key, ''), status, created_at`

	var expertise, cvKey any
	if input.ExpertiseAreas != "" {
		expertise = input.ExpertiseAreas
	}
	if input.CVKey != "" {
		cvKey = input.CVKey
	}

	row := r.pool.QueryRow(ctx, query, input.Name, input.Email, input.Role, expertise, cvKey, input.Status)

	var created NetworkSignup
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Role, &created.ExpertiseAreas, &created.CVKey, &created.Status, &created.CreatedAt); err != nil {
		return NetworkSignup{}, err
	}

	return created, nil
}

func (r *postgresNetworkRepository) GetSignupByID(ctx context.Context, id int64) (NetworkSignup, error) {
	query := `SELECT id, name, email, role, COALESCE(expertise_areas, ''), COALESCE(cv_key, ''), status, created_at
              FROM network_signups
              WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var s NetworkSignup
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Role, &s.ExpertiseAreas, &s.CVKey, &s.Status, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NetworkSignup{}, ErrSignupNotFound
		}
		return NetworkSignup{}, err
	}

	return s, nil
}

func (r *postgresNetworkRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmd, err := r.pool.Exec(ctx, "UPDATE network_signups SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSignupNotFound
	}
	return nil
}

func (r *postgresNetworkRepository) ListSignups(ctx context.Context, role string, limit, offset int) ([]NetworkSignup, int64, error) {
	query := `SELECT id, name, email, role, COALESCE(expertise_areas, ''), COALESCE(cv_key, ''), status, created_at
              FROM network_signups
              WHERE ($1 = '' OR role = $1)
              ORDER BY id DESC
              LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, role, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	signups := make([]NetworkSignup, 0)
	for rows.Next() {
		var s NetworkSignup
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Role, &s.ExpertiseAreas, &s.CVKey, &s.Status, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		signups = append(signups, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM network_signups WHERE ($1 = '' OR role = $1)", role)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return signups, total, nil
}
