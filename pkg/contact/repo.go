package contact

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMessageNotFound = errors.New("contact message not found")

type ContactRepository interface {
	CreateMessage(ctx context.Context, input ContactMessage) (ContactMessage, error)
	ListMessages(ctx context.Context, limit, offset int) ([]ContactMessage, int64, error)
	MarkResolved(ctx context.Context, id int64) error
}

type postgresContactRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &postgresContactRepository{pool: pool}
}

func (r *postgresContactRepository) CreateMessage(ctx context.Context, input ContactMessage) (ContactMessage, error) {
	query := `INSERT INTO contact_messages (name, email, phone, message, is_resolved, created_at)
              VALUES ($1, $2, $3, $4, false, NOW())
              RETURNING id, name, email, COALESCE(phone, ''), message, is_resolved, created_at`

	var phone any
	if input.Phone != "" {
		phone = input.Phone
	}

	row := r.pool.QueryRow(ctx, query, input.Name, input.Email, phone, input.Message)

	var created ContactMessage
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Message, &created.IsResolved, &created.CreatedAt); err != nil {
		return ContactMessage{}, err
	}

	return created, nil
}

func (r *postgresContactRepository) ListMessages(ctx context.Context, limit, offset int) ([]ContactMessage, int64, error) {
	query := `SELECT id, name, email, COALESCE(phone, ''), message, is_resolved, created_at
              FROM contact_messages
              ORDER BY id DESC
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := make([]ContactMessage, 0)
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.IsResolved, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contact_messages")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *postgresContactRepository) MarkResolved(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "UPDATE contact_messages SET is_resolved = true WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrMessageNotFound
	}
	return nil
}
