package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formadesk/formadesk/internal/app/models"
)

func TestBuildRequestTimelineDraftHasOnlyCreated(t *testing.T) {
	req := &models.Request{
		ID:        uuid.New(),
		Status:    models.StatusDraft,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	events := BuildRequestTimeline(req)

	require.Len(t, events, 1)
	assert.Equal(t, TimelineEventCreated, events[0].Type)
	assert.Equal(t, req.CreatedAt, events[0].Date)
}

func TestBuildRequestTimelineOrdersMostRecentFirst(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(2 * time.Hour)
	t2 := t0.Add(26 * time.Hour)
	comment := "Budget validé"

	req := &models.Request{
		ID:          uuid.New(),
		Status:      models.StatusApproved,
		CreatedAt:   t0,
		SubmittedAt: &t1,
		ApprovalSteps: []models.ApprovalStep{
			{
				StepOrder:  1,
				Status:     models.StepStatusApproved,
				ApprovedAt: &t2,
				Comments:   &comment,
			},
		},
	}

	events := BuildRequestTimeline(req)

	require.Len(t, events, 3)
	assert.Equal(t, TimelineEventApproved, events[0].Type)
	assert.Equal(t, t2, events[0].Date)
	assert.Equal(t, comment, events[0].Comment)
	assert.Equal(t, TimelineEventSubmitted, events[1].Type)
	assert.Equal(t, TimelineEventCreated, events[2].Type)
}

func TestBuildRequestTimelineOmitsPendingSteps(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	req := &models.Request{
		ID:          uuid.New(),
		Status:      models.StatusSubmitted,
		CreatedAt:   t0,
		SubmittedAt: &t1,
		ApprovalSteps: []models.ApprovalStep{
			{StepOrder: 1, Status: models.StepStatusPending},
		},
	}

	events := BuildRequestTimeline(req)

	require.Len(t, events, 2)
	assert.Equal(t, TimelineEventSubmitted, events[0].Type)
	assert.Equal(t, TimelineEventCreated, events[1].Type)
}

func TestBuildRequestTimelineRejectedStepCarriesComment(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)
	reason := "Over budget"

	req := &models.Request{
		ID:          uuid.New(),
		Status:      models.StatusRejected,
		CreatedAt:   t0,
		SubmittedAt: &t1,
		ApprovalSteps: []models.ApprovalStep{
			{StepOrder: 1, Status: models.StepStatusRejected, ApprovedAt: &t2, Comments: &reason},
		},
	}

	events := BuildRequestTimeline(req)

	require.Len(t, events, 3)
	assert.Equal(t, TimelineEventRejected, events[0].Type)
	assert.Equal(t, reason, events[0].Comment)
	assert.Equal(t, models.StepStatusRejected, events[0].Status)
}

// Equal timestamps keep emission order: created, submitted, then steps.
func TestBuildRequestTimelineStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	req := &models.Request{
		ID:          uuid.New(),
		Status:      models.StatusApproved,
		CreatedAt:   ts,
		SubmittedAt: &ts,
		ApprovalSteps: []models.ApprovalStep{
			{StepOrder: 1, Status: models.StepStatusApproved, ApprovedAt: &ts},
		},
	}

	events := BuildRequestTimeline(req)

	require.Len(t, events, 3)
	assert.Equal(t, TimelineEventCreated, events[0].Type)
	assert.Equal(t, TimelineEventSubmitted, events[1].Type)
	assert.Equal(t, TimelineEventApproved, events[2].Type)
}
