package helpers

import (
	"net/http"
	"strings"

	"invitationtracker/internal/domain"
)

// ParseInvitationFilter reads name, area and sort from the query string.
// Blank name or area means no filter; sort other than "asc" means descending.
func ParseInvitationFilter(r *http.Request) domain.InvitationFilter {
	q := r.URL.Query()
	return domain.InvitationFilter{
		Name: strings.TrimSpace(q.Get("name")),
		Area: q.Get("area"),
		Sort: domain.ParseSortDirection(q.Get("sort")),
	}
}
