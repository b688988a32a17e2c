package events

import (
	"math"
	"strings"
	"time"

	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/response"
)

// TierInput is one submitted ticket tier. Price is in whole currency units;
// it is stored as cents.
type TierInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateEventRequest is the body for POST /events.
type CreateEventRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`  // YYYY-MM-DD
	Time        string      `json:"time"`  // HH:MM
	Location    string      `json:"location"`
	Category    string      `json:"category"`
	Tiers       []TierInput `json:"ticket_tiers"`
	ImageURLs   []string    `json:"image_urls"`
	Published   bool        `json:"published"`
}

// Validate checks the submission fields and returns per-field errors in the
// order the fields appear on the form. Tier problems are not reported per
// tier: invalid tiers are dropped, and only an empty remainder is an error.
func (r *CreateEventRequest) Validate() []response.FieldError {
	var errs []response.FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, response.FieldError{Param: "title", Msg: "is required"})
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, response.FieldError{Param: "description", Msg: "is required"})
	}
	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, response.FieldError{Param: "date", Msg: "is required"})
	} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs = append(errs, response.FieldError{Param: "date", Msg: "must be a valid date (YYYY-MM-DD)"})
	}
	if strings.TrimSpace(r.Time) == "" {
		errs = append(errs, response.FieldError{Param: "time", Msg: "is required"})
	} else if _, err := time.Parse("15:04", r.Time); err != nil {
		errs = append(errs, response.FieldError{Param: "time", Msg: "must be a valid time (HH:MM)"})
	}
	if strings.TrimSpace(r.Location) == "" {
		errs = append(errs, response.FieldError{Param: "location", Msg: "is required"})
	}
	if strings.TrimSpace(r.Category) == "" {
		errs = append(errs, response.FieldError{Param: "category", Msg: "is required"})
	} else if _, err := models.ParseCategory(r.Category); err != nil {
		errs = append(errs, response.FieldError{Param: "category", Msg: "is not a valid category"})
	}
	if len(SanitizeTiers(r.Tiers)) == 0 {
		errs = append(errs, response.FieldError{Param: "ticket_tiers", Msg: "at least one tier with name, price and quantity >= 1 is required"})
	}
	return errs
}

// StartsAt combines the validated date and time fields. Call after Validate.
func (r *CreateEventRequest) StartsAt() time.Time {
	t, _ := time.Parse("2006-01-02 15:04", r.Date+" "+r.Time)
	return t
}

// SanitizeTiers drops tiers with an empty name, negative price or quantity
// below 1, keeping submission order. Invalid tiers are excluded silently,
// they never fail the whole form.
func SanitizeTiers(tiers []TierInput) []models.TicketTier {
	var out []models.TicketTier
	for _, t := range tiers {
		name := strings.TrimSpace(t.Name)
		if name == "" || t.Price < 0 || t.Quantity < 1 {
			continue
		}
		out = append(out, models.TicketTier{
			Position:   len(out),
			Name:       name,
			// Round, don't truncate: 19.99 is not exactly representable and
			// would otherwise store as 1998 cents.
			PriceCents: int(math.Round(t.Price * 100)),
			Quantity:   t.Quantity,
		})
	}
	return out
}
