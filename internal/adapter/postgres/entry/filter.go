package entry

import (
	"strings"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

// Sort parameters end up directly in SQL, so they are whitelisted here
// rather than passed through.

// sortColumn returns the SQL sort column for the filter, defaulting to
// "semantic".
func sortColumn(f domain.EntryFilter) string {
	switch f.SortBy {
	case "icon":
		return "icon"
	default:
		return "semantic"
	}
}

// sortDirection returns "ASC" or "DESC", defaulting to "ASC".
func sortDirection(f domain.EntryFilter) string {
	if strings.EqualFold(f.SortOrder, domain.SortDesc) {
		return "DESC"
	}
	return "ASC"
}
