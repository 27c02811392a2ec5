package services

import (
	"sort"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
)

// Timeline event types
const (
	TimelineEventCreated   = "created"
	TimelineEventSubmitted = "submitted"
	TimelineEventApproved  = "approved"
	TimelineEventRejected  = "rejected"
)

// BuildRequestTimeline flattens a request and its approval steps into a
// display timeline, most recent event first. A "created" event is always
// emitted; "submitted" only when the request was submitted. Each resolved
// step (non-nil approved_at) contributes an approved or rejected event with
// its comment; pending steps and steps in any other state are omitted.
//
// Pure transform, stable ordering: events with equal timestamps keep their
// emission order (created, submitted, then steps in step order).
func BuildRequestTimeline(req *models.Request) []dto.TimelineEventResponse {
	events := []dto.TimelineEventResponse{
		{Type: TimelineEventCreated, Date: req.CreatedAt},
	}

	if req.SubmittedAt != nil {
		events = append(events, dto.TimelineEventResponse{
			Type: TimelineEventSubmitted,
			Date: *req.SubmittedAt,
		})
	}

	for _, step := range req.ApprovalSteps {
		if step.ApprovedAt == nil {
			continue
		}

		var eventType string
		switch step.Status {
		case models.StepStatusApproved:
			eventType = TimelineEventApproved
		case models.StepStatusRejected:
			eventType = TimelineEventRejected
		default:
			continue
		}

		event := dto.TimelineEventResponse{
			Type:   eventType,
			Date:   *step.ApprovedAt,
			Status: step.Status,
		}
		if step.Comments != nil {
			event.Comment = *step.Comments
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	return events
}
