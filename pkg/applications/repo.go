package applications

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, input Application) (Application, error)
	GetApplicationByID(ctx context.Context, id int64) (Application, error)
	GetApplicationByTrackingID(ctx context.Context, trackingID string) (Application, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListApplications(ctx context.Context, limit, offset int) ([]Application, int64, error)
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error)
}

type postgresApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &postgresApplicationRepository{pool: pool}
}

func (r *postgresApplicationRepository) CreateApplication(ctx context.Context, input Application) (Application, error) {
	query := `INSERT INTO applications
              (tracking_id, founder_name, email, phone, venture_name, industry, pitch_deck_key, business_plan_key, gdpr_consent, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
              RETURNING id, tracking_id, founder_name, email, phone, venture_name, industry, pitch_deck_key, business_plan_key, gdpr_consent, status, created_at`

	row := r.pool.QueryRow(ctx, query,
		input.TrackingID, input.FounderName, input.Email, nullIfEmpty(input.Phone),
		input.VentureName, input.Industry, input.PitchDeckKey, nullIfEmpty(input.BusinessPlanKey),
		input.GDPRConsent, input.Status)

	return scanApplication(row)
}

func (r *postgresApplicationRepository) GetApplicationByID(ctx context.Context, id int64) (Application, error) {
	query := `SELECT id, tracking_id, founder_name, email, phone, venture_name, industry, pitch_deck_key, business_plan_key, gdpr_consent, status, created_at
              FROM applications
              WHERE id = $1`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func (r *postgresApplicationRepository) GetApplicationByTrackingID(ctx context.Context, trackingID string) (Application, error) {
	query := `SELECT id, tracking_id, founder_name, email, phone, venture_name, industry, pitch_deck_key, business_plan_key, gdpr_consent, status, created_at
              FROM applications
              WHERE tracking_id = $1`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, trackingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func (r *postgresApplicationRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	cmd, err := r.pool.Exec(ctx, "UPDATE applications SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *postgresApplicationRepository) ListApplications(ctx context.Context, limit, offset int) ([]Application, int64, error) {
	query := `SELECT id, tracking_id, founder_name, email, phone, venture_name, industry, pitch_deck_key, business_plan_key, gdpr_consent, status, created_at
              FROM applications
              ORDER BY id DESC
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps := make([]Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM applications")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *postgresApplicationRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error) {
	var count int64
	row := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM applications WHERE email = $1 AND created_at >= $2", email, since)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanApplication(row pgx.Row) (Application, error) {
	var app Application
	var phone, planKey *string
	err := row.Scan(&app.ID, &app.TrackingID, &app.FounderName, &app.Email, &phone,
		&app.VentureName, &app.Industry, &app.PitchDeckKey, &planKey,
		&app.GDPRConsent, &app.Status, &app.CreatedAt)
	if err != nil {
		return Application{}, err
	}
	if phone != nil {
		app.Phone = *phone
	}
	if planKey != nil {
		app.BusinessPlanKey = *planKey
	}
	return app, nil
}
