package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventra/backend/internal/models"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{Title: "Jazz Night", Description: "An evening of live jazz", Location: "Blue Note Hall", Category: models.CategoryMusic, OrganizerName: "Harlem Events"},
		{Title: "Food Fest", Description: "Street food from around the world", Location: "Riverside Park", Category: models.CategoryCulinary, OrganizerName: "Taste Co"},
	}
}

func TestFilterSearchOnly(t *testing.T) {
	out := Filter(sampleEvents(), "jazz", "all")
	assert.Len(t, out, 1)
	assert.Equal(t, "Jazz Night", out[0].Title)
}

func TestFilterCategoryOnly(t *testing.T) {
	out := Filter(sampleEvents(), "", "culinary")
	assert.Len(t, out, 1)
	assert.Equal(t, "Food Fest", out[0].Title)
}

func TestFilterComposesWithAnd(t *testing.T) {
	// Search matches Jazz Night but the category filter excludes it.
	out := Filter(sampleEvents(), "jazz", "culinary")
	assert.Empty(t, out)
}

func TestFilterCaseInsensitive(t *testing.T) {
	out := Filter(sampleEvents(), "JAZZ", "all")
	assert.Len(t, out, 1)
}

func TestFilterMatchesOrganizerName(t *testing.T) {
	out := Filter(sampleEvents(), "taste", "")
	assert.Len(t, out, 1)
	assert.Equal(t, "Food Fest", out[0].Title)
}

func TestFilterEmptyMatchesEverything(t *testing.T) {
	out := Filter(sampleEvents(), "", "")
	assert.Len(t, out, 2)
	out = Filter(sampleEvents(), "  ", "all")
	assert.Len(t, out, 2)
}

func TestFilterLocationAndDescription(t *testing.T) {
	out := Filter(sampleEvents(), "riverside", "all")
	assert.Len(t, out, 1)
	out = Filter(sampleEvents(), "live jazz", "all")
	assert.Len(t, out, 1)
}
