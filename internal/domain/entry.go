package domain

// Entry is a live row of the glyph collection: a semantic key and the icon
// currently assigned to it. Semantic is stored normalized (trimmed,
// lower-cased) and is unique.
type Entry struct {
	Semantic string
	Icon     string
}
