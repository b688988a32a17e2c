package emaillogs

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventra/backend/internal/models"
)

// Repository handles email log persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an email logs repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Record inserts an email log entry and returns it.
func (r *Repository) Record(ctx context.Context, eventID uuid.UUID, recipient, subject string, status models.EmailStatus) (*models.EmailLog, error) {
	const q = `INSERT INTO email_logs (event_id, recipient, subject, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, recipient, subject, status, created_at`
	var l models.EmailLog
	err := r.pool.QueryRow(ctx, q, eventID, recipient, subject, string(status)).
		Scan(&l.ID, &l.EventID, &l.Recipient, &l.Subject, &l.Status, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByEvent returns the emails sent for an event, newest first.
func (r *Repository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.EmailLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, event_id, recipient, subject, status, created_at
		 FROM email_logs WHERE event_id = $1 ORDER BY created_at DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.EmailLog
	for rows.Next() {
		var l models.EmailLog
		if err := rows.Scan(&l.ID, &l.EventID, &l.Recipient, &l.Subject, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
