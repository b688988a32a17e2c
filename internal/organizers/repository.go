package organizers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventra/backend/internal/models"
)

// ErrNotFound is returned when no profile matches the lookup.
var ErrNotFound = errors.New("organizer profile not found")

const profileColumns = `id, user_id, name, position, bio, company_name, registration_number,
	business_type, address, phone, website, verified, created_at, updated_at`

// Repository handles organizer profile persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an organizers repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanProfile(row pgx.Row, p *models.OrganizerProfile) error {
	return row.Scan(&p.ID, &p.UserID, &p.Name, &p.Position, &p.Bio, &p.CompanyName,
		&p.RegistrationNumber, &p.BusinessType, &p.Address, &p.Phone, &p.Website,
		&p.Verified, &p.CreatedAt, &p.UpdatedAt)
}

// GetByUserID returns the profile owned by the given user.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.OrganizerProfile, error) {
	var p models.OrganizerProfile
	err := scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM organizer_profiles WHERE user_id = $1`, userID), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces the editable profile fields. The verified flag is excluded;
// only SetVerified touches it.
func (r *Repository) Update(ctx context.Context, p *models.OrganizerProfile) error {
	const q = `UPDATE organizer_profiles
		SET name = $1, position = $2, bio = $3, company_name = $4, registration_number = $5,
			business_type = $6, address = $7, phone = $8, website = $9, updated_at = NOW()
		WHERE user_id = $10
		RETURNING ` + profileColumns
	return scanProfile(r.pool.QueryRow(ctx, q, p.Name, p.Position, p.Bio, p.CompanyName,
		p.RegistrationNumber, string(p.BusinessType), p.Address, p.Phone, p.Website, p.UserID), p)
}

// SetVerified flips the staff verification flag on a profile.
func (r *Repository) SetVerified(ctx context.Context, profileID uuid.UUID, verified bool) (*models.OrganizerProfile, error) {
	const q = `UPDATE organizer_profiles SET verified = $1, updated_at = NOW()
		WHERE id = $2 RETURNING ` + profileColumns
	var p models.OrganizerProfile
	err := scanProfile(r.pool.QueryRow(ctx, q, verified, profileID), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
