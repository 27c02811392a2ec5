package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the closed set of states a training request can be in.
type RequestStatus string

const (
	StatusDraft     RequestStatus = "draft"
	StatusSubmitted RequestStatus = "submitted"
	StatusInReview  RequestStatus = "in_review"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusScheduled RequestStatus = "scheduled"
	StatusCompleted RequestStatus = "completed"
)

// AllRequestStatuses lists every valid status, in lifecycle order.
var AllRequestStatuses = []RequestStatus{
	StatusDraft,
	StatusSubmitted,
	StatusInReview,
	StatusApproved,
	StatusRejected,
	StatusScheduled,
	StatusCompleted,
}

// StatusInfo carries the display label and badge class for a status.
// This is the single authoritative mapping; renderers must not duplicate it.
type StatusInfo struct {
	Label string `json:"label"`
	Badge string `json:"badge"`
}

var statusInfos = map[RequestStatus]StatusInfo{
	StatusDraft:     {Label: "Brouillon", Badge: "bg-zinc-500"},
	StatusSubmitted: {Label: "Soumis", Badge: "bg-blue-500"},
	StatusInReview:  {Label: "En révision", Badge: "bg-amber-500"},
	StatusApproved:  {Label: "Approuvé", Badge: "bg-emerald-500"},
	StatusRejected:  {Label: "Rejeté", Badge: "bg-rose-500"},
	StatusScheduled: {Label: "Planifié", Badge: "bg-indigo-500"},
	StatusCompleted: {Label: "Complété", Badge: "bg-gray-500"},
}

// Info returns the display mapping for the status. Unknown statuses fall
// back to the draft styling rather than panicking.
func (s RequestStatus) Info() StatusInfo {
	if info, ok := statusInfos[s]; ok {
		return info
	}
	return statusInfos[StatusDraft]
}

// IsValid reports whether the status is one of the seven enumerated values.
func (s RequestStatus) IsValid() bool {
	_, ok := statusInfos[s]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

// statusTransitions is the explicit transition table. The legacy portal let
// any component set any status; here invalid transitions are rejected with
// a typed error at the service layer.
var statusTransitions = map[RequestStatus][]RequestStatus{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusInReview, StatusApproved, StatusRejected},
	StatusInReview:  {StatusApproved, StatusRejected},
	StatusApproved:  {StatusScheduled, StatusCompleted},
	StatusScheduled: {StatusCompleted},
	StatusRejected:  {},
	StatusCompleted: {},
}

// IsValidTransition reports whether a request may move from one status to
// another. Self-transitions are not allowed.
func IsValidTransition(from, to RequestStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TrainingSummary is the denormalized training snapshot carried on a request.
type TrainingSummary struct {
	Title    string   `json:"title"`
	Cost     *float64 `json:"cost,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// ProfileSummary is the denormalized requester snapshot carried on a request.
type ProfileSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Request is a training request and its approval lifecycle, based on the
// 'requests' table with joined training and requester snapshots.
type Request struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	UserID        uuid.UUID        `json:"userId" db:"user_id"`
	TrainingID    uuid.UUID        `json:"trainingId" db:"training_id"`
	SessionID     *uuid.UUID       `json:"sessionId,omitempty" db:"session_id"`
	Status        RequestStatus    `json:"status" db:"status"`
	Justification *string          `json:"justification,omitempty" db:"justification"`
	SubmittedAt   *time.Time       `json:"submittedAt,omitempty" db:"submitted_at"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
	Training      *TrainingSummary `json:"training,omitempty"`
	Requester     *ProfileSummary  `json:"requester,omitempty"`
	ApprovalSteps []ApprovalStep   `json:"approvalSteps,omitempty"`
}
