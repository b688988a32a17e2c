package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventra/backend/internal/models"
)

var (
	// ErrNotFound is returned when the event does not exist.
	ErrNotFound = errors.New("event not found")
	// ErrAlreadyReviewed is returned when the event has left the pending
	// state; reviews are terminal and cannot be repeated.
	ErrAlreadyReviewed = errors.New("event already reviewed")
)

// Repository handles review queue persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a review repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListPending returns the review queue projection, oldest submission first.
func (r *Repository) ListPending(ctx context.Context) ([]models.PendingSummary, error) {
	const q = `SELECT e.id, e.title, e.starts_at, e.location, u.full_name, e.created_at
		FROM events e JOIN users u ON u.id = e.organizer_id
		WHERE e.approval_status = 'pending'
		ORDER BY e.created_at ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.PendingSummary
	for rows.Next() {
		var s models.PendingSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.StartsAt, &s.Location, &s.OrganizerName, &s.SubmittedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetDetail returns the full event with ticket tiers and the organizer's
// profile for the review screen. Works for any approval state so admins can
// revisit past decisions.
func (r *Repository) GetDetail(ctx context.Context, id uuid.UUID) (*models.Event, *models.OrganizerProfile, error) {
	const q = `SELECT e.id, e.organizer_id, e.title, e.description, e.starts_at, e.start_time,
			e.location, e.category, e.image_urls, e.published, e.approval_status, e.admin_feedback,
			e.reviewed_at, e.reviewed_by, e.created_at, e.updated_at, u.full_name
		FROM events e JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1`
	var e models.Event
	err := r.pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description,
		&e.StartsAt, &e.StartTime, &e.Location, &e.Category, &e.ImageURLs, &e.Published,
		&e.ApprovalStatus, &e.AdminFeedback, &e.ReviewedAt, &e.ReviewedBy,
		&e.CreatedAt, &e.UpdatedAt, &e.OrganizerName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	tierRows, err := r.pool.Query(ctx,
		`SELECT id, event_id, position, name, price_cents, quantity, sold
		 FROM ticket_tiers WHERE event_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, nil, err
	}
	defer tierRows.Close()
	for tierRows.Next() {
		var t models.TicketTier
		if err := tierRows.Scan(&t.ID, &t.EventID, &t.Position, &t.Name, &t.PriceCents, &t.Quantity, &t.Sold); err != nil {
			return nil, nil, err
		}
		e.Tiers = append(e.Tiers, t)
	}
	if err := tierRows.Err(); err != nil {
		return nil, nil, err
	}

	const qProfile = `SELECT id, user_id, name, position, bio, company_name, registration_number,
			business_type, address, phone, website, verified, created_at, updated_at
		FROM organizer_profiles WHERE user_id = $1`
	var p models.OrganizerProfile
	err = r.pool.QueryRow(ctx, qProfile, e.OrganizerID).Scan(&p.ID, &p.UserID, &p.Name, &p.Position,
		&p.Bio, &p.CompanyName, &p.RegistrationNumber, &p.BusinessType, &p.Address, &p.Phone,
		&p.Website, &p.Verified, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Events predating mandatory profiles; the review screen shows the user only.
		return &e, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &e, &p, nil
}

// Review transitions a pending event to the target status. The pending guard
// is in the UPDATE itself, so two admins racing on the same event resolve in
// the database: the second writer matches zero rows and gets
// ErrAlreadyReviewed.
func (r *Repository) Review(ctx context.Context, id uuid.UUID, target models.ApprovalStatus, feedback string, reviewer uuid.UUID) (*models.Event, error) {
	const q = `UPDATE events
		SET approval_status = $1, admin_feedback = $2, reviewed_at = NOW(), reviewed_by = $3, updated_at = NOW()
		WHERE id = $4 AND approval_status = 'pending'
		RETURNING id, organizer_id, title, description, starts_at, start_time, location, category,
			image_urls, published, approval_status, admin_feedback, reviewed_at, reviewed_by, created_at, updated_at`
	var e models.Event
	err := r.pool.QueryRow(ctx, q, string(target), feedback, reviewer, id).Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.StartsAt, &e.StartTime,
		&e.Location, &e.Category, &e.ImageURLs, &e.Published, &e.ApprovalStatus, &e.AdminFeedback,
		&e.ReviewedAt, &e.ReviewedBy, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if qErr := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); qErr != nil {
			return nil, qErr
		}
		if exists {
			return nil, ErrAlreadyReviewed
		}
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DashboardCounts aggregates event counts per approval state and the number
// of organizer accounts.
func (r *Repository) DashboardCounts(ctx context.Context) (*DashboardStats, error) {
	const q = `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE approval_status = 'pending'),
		COUNT(*) FILTER (WHERE approval_status = 'approved'),
		COUNT(*) FILTER (WHERE approval_status = 'rejected'),
		(SELECT COUNT(*) FROM users WHERE role = 'organizer')
		FROM events`
	var s DashboardStats
	err := r.pool.QueryRow(ctx, q).Scan(&s.Events.Total, &s.Events.Pending, &s.Events.Approved, &s.Events.Rejected, &s.Users.Organizers)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DashboardStats is the aggregate for GET /admin/dashboard.
type DashboardStats struct {
	Events struct {
		Total    int `json:"total"`
		Pending  int `json:"pending"`
		Approved int `json:"approved"`
		Rejected int `json:"rejected"`
	} `json:"events"`
	Users struct {
		Organizers int `json:"organizers"`
	} `json:"users"`
}
