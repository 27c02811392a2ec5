package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formadesk/formadesk/internal/app/models"
)

func strPtr(s string) *string { return &s }

func sampleRequests() (alice, bob uuid.UUID, requests []models.Request) {
	alice = uuid.New()
	bob = uuid.New()

	requests = []models.Request{
		{
			ID:     uuid.New(),
			UserID: alice,
			Status: models.StatusDraft,
			Training: &models.TrainingSummary{Title: "Certified Kubernetes Administrator",
				Category: strPtr("Cloud")},
			Requester: &models.ProfileSummary{FirstName: "Alice", LastName: "Moreau", Email: "alice.moreau@formadesk.app"},
		},
		{
			ID:        uuid.New(),
			UserID:    bob,
			Status:    models.StatusInReview,
			Training:  &models.TrainingSummary{Title: "Management d'équipe"},
			Requester: &models.ProfileSummary{FirstName: "Bob", LastName: "Lefevre", Email: "bob.lefevre@formadesk.app"},
		},
		{
			ID:        uuid.New(),
			UserID:    alice,
			Status:    models.StatusApproved,
			Training:  &models.TrainingSummary{Title: "Sécurité applicative"},
			Requester: &models.ProfileSummary{FirstName: "Alice", LastName: "Moreau", Email: "alice.moreau@formadesk.app"},
		},
	}
	return alice, bob, requests
}

func TestFilterRequestsNoFiltersReturnsAllInOrder(t *testing.T) {
	_, _, requests := sampleRequests()

	got := FilterRequests(requests, uuid.Nil, QueueAll, nil, "")

	require.Len(t, got, len(requests))
	for i := range requests {
		assert.Equal(t, requests[i].ID, got[i].ID, "ordering must be preserved")
	}
}

func TestFilterRequestsIsIdempotent(t *testing.T) {
	alice, _, requests := sampleRequests()

	once := FilterRequests(requests, alice, QueueMy, []models.RequestStatus{models.StatusDraft}, "kubernetes")
	twice := FilterRequests(once, alice, QueueMy, []models.RequestStatus{models.StatusDraft}, "kubernetes")

	assert.Equal(t, once, twice)
}

func TestFilterRequestsDoesNotMutateInput(t *testing.T) {
	alice, _, requests := sampleRequests()
	original := make([]models.Request, len(requests))
	copy(original, requests)

	FilterRequests(requests, alice, QueueMy, []models.RequestStatus{models.StatusApproved}, "sécurité")

	assert.Equal(t, original, requests)
}

func TestFilterRequestsMyQueue(t *testing.T) {
	alice, bob, requests := sampleRequests()

	got := FilterRequests(requests, alice, QueueMy, nil, "")
	require.Len(t, got, 2)
	for _, req := range got {
		assert.Equal(t, alice, req.UserID)
	}

	got = FilterRequests(requests, bob, QueueMy, nil, "")
	require.Len(t, got, 1)
	assert.Equal(t, bob, got[0].UserID)
}

// No reporting-line data exists, so the team queue shows everything.
func TestFilterRequestsTeamQueueBehavesLikeAll(t *testing.T) {
	alice, _, requests := sampleRequests()

	team := FilterRequests(requests, alice, QueueTeam, nil, "")
	all := FilterRequests(requests, alice, QueueAll, nil, "")

	assert.Equal(t, all, team)
}

func TestFilterRequestsStatusSet(t *testing.T) {
	_, _, requests := sampleRequests()

	got := FilterRequests(requests, uuid.Nil, QueueAll,
		[]models.RequestStatus{models.StatusDraft, models.StatusApproved}, "")

	require.Len(t, got, 2)
	assert.Equal(t, models.StatusDraft, got[0].Status)
	assert.Equal(t, models.StatusApproved, got[1].Status)
}

func TestFilterRequestsSearchIsCaseInsensitive(t *testing.T) {
	_, _, requests := sampleRequests()

	byTitle := FilterRequests(requests, uuid.Nil, QueueAll, nil, "KUBERNETES")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Certified Kubernetes Administrator", byTitle[0].Training.Title)

	byName := FilterRequests(requests, uuid.Nil, QueueAll, nil, "lefevre")
	require.Len(t, byName, 1)
	assert.Equal(t, "Bob", byName[0].Requester.FirstName)

	byEmail := FilterRequests(requests, uuid.Nil, QueueAll, nil, "alice.moreau@")
	assert.Len(t, byEmail, 2)
}

func TestFilterRequestsSearchMissesWithoutJoinedData(t *testing.T) {
	req := models.Request{ID: uuid.New(), UserID: uuid.New(), Status: models.StatusDraft}

	got := FilterRequests([]models.Request{req}, uuid.Nil, QueueAll, nil, "anything")

	assert.Empty(t, got)
}

func TestFilterRequestsResultIsSubset(t *testing.T) {
	alice, _, requests := sampleRequests()
	byID := map[uuid.UUID]bool{}
	for _, req := range requests {
		byID[req.ID] = true
	}

	got := FilterRequests(requests, alice, QueueMy, []models.RequestStatus{models.StatusDraft}, "a")
	for _, req := range got {
		assert.True(t, byID[req.ID], "filter must never invent requests")
	}
}

func TestQueueFilterIsValid(t *testing.T) {
	assert.True(t, QueueMy.IsValid())
	assert.True(t, QueueTeam.IsValid())
	assert.True(t, QueueAll.IsValid())
	assert.False(t, QueueFilter("").IsValid())
	assert.False(t, QueueFilter("mine").IsValid())
}
