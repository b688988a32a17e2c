package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:       "Jazz Night",
		Description: "An evening of live jazz",
		Date:        "2026-10-02",
		Time:        "19:30",
		Location:    "Blue Note Hall",
		Category:    "music",
		Tiers: []TierInput{
			{Name: "General", Price: 25, Quantity: 100},
		},
	}
}

func TestValidateOK(t *testing.T) {
	req := validRequest()
	assert.Empty(t, req.Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	req := validRequest()
	req.Title = "  "
	req.Location = ""
	req.Description = ""
	errs := req.Validate()
	params := make([]string, 0, len(errs))
	for _, e := range errs {
		params = append(params, e.Param)
	}
	assert.ElementsMatch(t, []string{"title", "description", "location"}, params)
}

func TestValidateBadDate(t *testing.T) {
	req := validRequest()
	req.Date = "02/10/2026"
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "date", errs[0].Param)
}

func TestValidateUnknownCategory(t *testing.T) {
	req := validRequest()
	req.Category = "karaoke"
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "category", errs[0].Param)
}

func TestValidateNoUsableTier(t *testing.T) {
	req := validRequest()
	req.Tiers = []TierInput{{Name: "", Price: 10, Quantity: 5}}
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "ticket_tiers", errs[0].Param)
}

func TestStartsAtCombinesDateAndTime(t *testing.T) {
	req := validRequest()
	got := req.StartsAt()
	want := time.Date(2026, 10, 2, 19, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(want))
}

func TestSanitizeTiersDropsInvalid(t *testing.T) {
	tiers := SanitizeTiers([]TierInput{
		{Name: "VIP", Price: 100, Quantity: 20},
		{Name: "", Price: 10, Quantity: 50},      // empty name
		{Name: "Floor", Price: -1, Quantity: 10}, // negative price
		{Name: "Balcony", Price: 15, Quantity: 0},
		{Name: "General", Price: 25.50, Quantity: 200},
	})
	require.Len(t, tiers, 2)
	assert.Equal(t, "VIP", tiers[0].Name)
	assert.Equal(t, 10000, tiers[0].PriceCents)
	assert.Equal(t, "General", tiers[1].Name)
	assert.Equal(t, 2550, tiers[1].PriceCents)
	// positions are reassigned to the surviving order
	assert.Equal(t, 0, tiers[0].Position)
	assert.Equal(t, 1, tiers[1].Position)
}

func TestSanitizeTiersRoundsFractionalPrices(t *testing.T) {
	// 19.99 and 0.29 are not exactly representable; truncation would lose a cent.
	tiers := SanitizeTiers([]TierInput{
		{Name: "General", Price: 19.99, Quantity: 10},
		{Name: "Student", Price: 0.29, Quantity: 10},
	})
	require.Len(t, tiers, 2)
	assert.Equal(t, 1999, tiers[0].PriceCents)
	assert.Equal(t, 29, tiers[1].PriceCents)
}

func TestSanitizeTiersFreeEventAllowed(t *testing.T) {
	tiers := SanitizeTiers([]TierInput{{Name: "Free entry", Price: 0, Quantity: 500}})
	require.Len(t, tiers, 1)
	assert.Equal(t, 0, tiers[0].PriceCents)
}

func TestSanitizeTiersEmptyInput(t *testing.T) {
	assert.Empty(t, SanitizeTiers(nil))
}
