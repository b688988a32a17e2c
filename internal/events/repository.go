package events

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventra/backend/internal/models"
)

var (
	// ErrNotFound is returned when no event matches the lookup.
	ErrNotFound = errors.New("event not found")
	// ErrReviewed is returned when a write requires the pending state but the
	// event has already been reviewed.
	ErrReviewed = errors.New("event already reviewed")
)

const eventColumns = `id, organizer_id, title, description, starts_at, start_time, location, category,
	image_urls, published, approval_status, admin_feedback, reviewed_at, reviewed_by, created_at, updated_at`

// Repository handles event persistence for organizers.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an events repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanEvent(row pgx.Row, e *models.Event) error {
	return row.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.StartsAt, &e.StartTime,
		&e.Location, &e.Category, &e.ImageURLs, &e.Published, &e.ApprovalStatus, &e.AdminFeedback,
		&e.ReviewedAt, &e.ReviewedBy, &e.CreatedAt, &e.UpdatedAt)
}

// Create inserts a new event with its ticket tiers in one transaction.
// The approval status is always pending on insert.
func (r *Repository) Create(ctx context.Context, e *models.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `INSERT INTO events (organizer_id, title, description, starts_at, start_time, location, category, image_urls, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, approval_status, created_at, updated_at`
	err = tx.QueryRow(ctx, q, e.OrganizerID, e.Title, e.Description, e.StartsAt, e.StartTime,
		e.Location, string(e.Category), e.ImageURLs, e.Published).
		Scan(&e.ID, &e.ApprovalStatus, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return err
	}

	const qTier = `INSERT INTO ticket_tiers (event_id, position, name, price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, sold`
	for i := range e.Tiers {
		t := &e.Tiers[i]
		t.EventID = e.ID
		if err := tx.QueryRow(ctx, qTier, e.ID, t.Position, t.Name, t.PriceCents, t.Quantity).Scan(&t.ID, &t.Sold); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID returns an event with its ticket tiers.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var e models.Event
	err := scanEvent(r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	tiers, err := r.tiersForEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Tiers = tiers
	return &e, nil
}

// ListByOrganizer returns all events owned by the organizer, newest first.
func (r *Repository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE organizer_id = $1 ORDER BY created_at DESC`, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Event
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update replaces the editable fields and ticket tiers of a pending event.
// The caller checks ownership first; the pending guard lives in the UPDATE
// itself so a review landing after the caller's read cannot be overwritten —
// the write matches zero rows and returns ErrReviewed instead.
func (r *Repository) Update(ctx context.Context, e *models.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `UPDATE events SET title = $1, description = $2, starts_at = $3, start_time = $4,
		location = $5, category = $6, image_urls = $7, published = $8, updated_at = NOW()
		WHERE id = $9 AND approval_status = 'pending'`
	tag, err := tx.Exec(ctx, q, e.Title, e.Description, e.StartsAt, e.StartTime,
		e.Location, string(e.Category), e.ImageURLs, e.Published, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if qErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, e.ID).Scan(&exists); qErr != nil {
			return qErr
		}
		if exists {
			return ErrReviewed
		}
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ticket_tiers WHERE event_id = $1`, e.ID); err != nil {
		return err
	}
	const qTier = `INSERT INTO ticket_tiers (event_id, position, name, price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, sold`
	for i := range e.Tiers {
		t := &e.Tiers[i]
		t.EventID = e.ID
		if err := tx.QueryRow(ctx, qTier, e.ID, t.Position, t.Name, t.PriceCents, t.Quantity).Scan(&t.ID, &t.Sold); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes an event by ID. Tiers go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}

func (r *Repository) tiersForEvent(ctx context.Context, eventID uuid.UUID) ([]models.TicketTier, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, event_id, position, name, price_cents, quantity, sold
		 FROM ticket_tiers WHERE event_id = $1 ORDER BY position`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []models.TicketTier
	for rows.Next() {
		var t models.TicketTier
		if err := rows.Scan(&t.ID, &t.EventID, &t.Position, &t.Name, &t.PriceCents, &t.Quantity, &t.Sold); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}
