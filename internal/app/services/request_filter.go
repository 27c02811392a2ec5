package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/formadesk/formadesk/internal/app/models"
)

// QueueFilter scopes a request listing to the viewer's own requests, their
// team's, or everything.
type QueueFilter string

const (
	QueueMy   QueueFilter = "my"
	QueueTeam QueueFilter = "team"
	QueueAll  QueueFilter = "all"
)

// IsValid reports whether q is one of the accepted queue values.
func (q QueueFilter) IsValid() bool {
	switch q {
	case QueueMy, QueueTeam, QueueAll:
		return true
	}
	return false
}

// FilterRequests derives the visible subset of requests from three
// independent inputs: queue scope, a status set (empty means no restriction)
// and a free-text search. The input slice is never mutated and its ordering
// is preserved; callers sort upstream.
//
// The "team" queue has no membership rule because no reporting-line data
// exists, so it behaves like "all".
func FilterRequests(requests []models.Request, viewerID uuid.UUID, queue QueueFilter, statuses []models.RequestStatus, search string) []models.Request {
	statusSet := make(map[models.RequestStatus]struct{}, len(statuses))
	for _, s := range statuses {
		statusSet[s] = struct{}{}
	}

	query := strings.ToLower(search)

	result := make([]models.Request, 0, len(requests))
	for _, req := range requests {
		if queue == QueueMy && req.UserID != viewerID {
			continue
		}
		if len(statusSet) > 0 {
			if _, ok := statusSet[req.Status]; !ok {
				continue
			}
		}
		if query != "" && !matchesSearch(&req, query) {
			continue
		}
		result = append(result, req)
	}

	return result
}

// matchesSearch reports whether the lower-cased query is a substring of the
// training title, requester first name, last name, or email. The query is
// not trimmed: interior or edge whitespace must match literally.
func matchesSearch(req *models.Request, query string) bool {
	if req.Training != nil && strings.Contains(strings.ToLower(req.Training.Title), query) {
		return true
	}
	if req.Requester != nil {
		if strings.Contains(strings.ToLower(req.Requester.FirstName), query) {
			return true
		}
		if strings.Contains(strings.ToLower(req.Requester.LastName), query) {
			return true
		}
		if strings.Contains(strings.ToLower(req.Requester.Email), query) {
			return true
		}
	}
	return false
}
