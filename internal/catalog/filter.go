package catalog

import (
	"strings"

	"github.com/eventra/backend/internal/models"
)

// Filter narrows events by a case-insensitive substring search over title,
// description, location and organizer name, and by exact category. An empty
// search matches everything; category "" or "all" matches every category.
// Both conditions compose with AND.
func Filter(events []models.Event, search, category string) []models.Event {
	search = strings.ToLower(strings.TrimSpace(search))
	category = strings.TrimSpace(category)
	matchAll := category == "" || category == "all"

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !matchAll && string(e.Category) != category {
			continue
		}
		if search != "" && !matchesSearch(&e, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e *models.Event, search string) bool {
	for _, field := range []string{e.Title, e.Description, e.Location, e.OrganizerName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
