package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventra/backend/internal/models"
)

// ErrNotFound is returned when no visible event matches the lookup.
var ErrNotFound = errors.New("event not found")

// Repository reads the public catalog. Only approved AND published events are
// ever returned; the approval gate is part of every query, not a post-filter.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a catalog repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const visibleWhere = `e.approval_status = 'approved' AND e.published = TRUE`

// ListApproved returns all publicly visible events with tiers and organizer
// name, soonest first.
func (r *Repository) ListApproved(ctx context.Context) ([]models.Event, error) {
	const q = `SELECT e.id, e.organizer_id, e.title, e.description, e.starts_at, e.start_time,
			e.location, e.category, e.image_urls, e.published, e.approval_status,
			e.created_at, e.updated_at, u.full_name
		FROM events e JOIN users u ON u.id = e.organizer_id
		WHERE ` + visibleWhere + `
		ORDER BY e.starts_at ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.StartsAt, &e.StartTime,
			&e.Location, &e.Category, &e.ImageURLs, &e.Published, &e.ApprovalStatus,
			&e.CreatedAt, &e.UpdatedAt, &e.OrganizerName); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachTiers(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetApproved returns a single visible event or ErrNotFound. Pending,
// rejected and unpublished events are indistinguishable from missing ones.
func (r *Repository) GetApproved(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	const q = `SELECT e.id, e.organizer_id, e.title, e.description, e.starts_at, e.start_time,
			e.location, e.category, e.image_urls, e.published, e.approval_status,
			e.created_at, e.updated_at, u.full_name
		FROM events e JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1 AND ` + visibleWhere
	var e models.Event
	err := r.pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.StartsAt, &e.StartTime,
		&e.Location, &e.Category, &e.ImageURLs, &e.Published, &e.ApprovalStatus,
		&e.CreatedAt, &e.UpdatedAt, &e.OrganizerName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	list := []models.Event{e}
	if err := r.attachTiers(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *Repository) attachTiers(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(events))
	index := make(map[uuid.UUID]*models.Event, len(events))
	for i := range events {
		ids[i] = events[i].ID
		index[events[i].ID] = &events[i]
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, event_id, position, name, price_cents, quantity, sold
		 FROM ticket_tiers WHERE event_id = ANY($1) ORDER BY event_id, position`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var t models.TicketTier
		if err := rows.Scan(&t.ID, &t.EventID, &t.Position, &t.Name, &t.PriceCents, &t.Quantity, &t.Sold); err != nil {
			return err
		}
		if e, ok := index[t.EventID]; ok {
			e.Tiers = append(e.Tiers, t)
		}
	}
	return rows.Err()
}
