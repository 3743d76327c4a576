package auth

import "strings"

// Allowlist is the set of logins with admin rights, matched
// case-insensitively.
type Allowlist struct {
	logins map[string]struct{}
}

// NewAllowlist builds an Allowlist from a slice of logins.
// Entries are trimmed and lower-cased; empty entries are dropped.
func NewAllowlist(logins []string) *Allowlist {
	set := make(map[string]struct{}, len(logins))
	for _, l := range logins {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			set[l] = struct{}{}
		}
	}
	return &Allowlist{logins: set}
}

// IsAdmin reports whether login is on the allowlist.
func (a *Allowlist) IsAdmin(login string) bool {
	if login == "" {
		return false
	}
	_, ok := a.logins[strings.ToLower(login)]
	return ok
}

// Len returns the number of allowlisted logins.
func (a *Allowlist) Len() int {
	return len(a.logins)
}
