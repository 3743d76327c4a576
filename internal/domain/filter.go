package domain

// Sort orders accepted by listing filters. Anything else falls back to the
// listing's default.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// EntryFilter contains filtering/sorting parameters for collection listings.
// Filters are case-insensitive substring matches; Semantic is expected in
// normalized form.
type EntryFilter struct {
	Semantic string
	Icon     string

	// SortBy: "semantic" or "icon". Default: "semantic".
	SortBy string
	// SortOrder: SortAsc or SortDesc. Default: SortAsc.
	SortOrder string
}

// JournalFilter contains filtering/sorting parameters for journal listings.
type JournalFilter struct {
	Semantic string
	Login    string
	Icon     string

	// SortOrder for the created timestamp. Default: SortDesc (newest first).
	SortOrder string
}
