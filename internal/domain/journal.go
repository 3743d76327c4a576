package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeletedIconMarker prefixes the icon value of a journal record written for
// an entry deletion, embedding the removed icon for the audit trail.
const DeletedIconMarker = "[deleted] "

// JournalRecord is one record of the append-mostly change journal.
//
// Applied is monotonic: it starts false for user proposals, true for direct
// admin mutations, and flips false→true exactly once when a proposal is
// applied. No other field ever changes after creation.
type JournalRecord struct {
	ID       uuid.UUID
	Semantic string
	Icon     string
	Login    string
	Created  time.Time
	Applied  bool

	// CurrentIcon is the collection's live icon for Semantic at read time.
	// Populated only by journal listings (left join); nil when the semantic
	// no longer exists. The journal→collection reference is weak.
	CurrentIcon *string
}

// IsPending reports whether the record is an unapplied proposal.
func (r *JournalRecord) IsPending() bool {
	return !r.Applied
}

// DeletionIcon returns the journal icon value recording the deletion of
// previousIcon.
func DeletionIcon(previousIcon string) string {
	return DeletedIconMarker + previousIcon
}
