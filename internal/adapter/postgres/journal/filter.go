package journal

import (
	"strings"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

// sortDirection returns the whitelisted SQL direction for the created
// timestamp, defaulting to "DESC" so the journal reads newest-first.
func sortDirection(f domain.JournalFilter) string {
	if strings.EqualFold(f.SortOrder, domain.SortAsc) {
		return "ASC"
	}
	return "DESC"
}
