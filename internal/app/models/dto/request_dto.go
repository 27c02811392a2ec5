package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/formadesk/formadesk/internal/app/models"
)

// CreateRequestRequest is the payload to open a new training request (draft).
type CreateRequestRequest struct {
	TrainingID    uuid.UUID  `json:"trainingId" binding:"required"`
	SessionID     *uuid.UUID `json:"sessionId,omitempty"`
	Justification *string    `json:"justification,omitempty"`
}

// DecisionRequest carries the optional comment of an approve action.
type DecisionRequest struct {
	Comment string `json:"comment"`
}

// RejectRequest carries the mandatory rejection reason. The non-empty check
// happens in the service so that whitespace-only comments are refused too.
type RejectRequest struct {
	Comment string `json:"comment"`
}

// DelegateRequest names the user the pending approval step moves to.
type DelegateRequest struct {
	DelegateTo uuid.UUID `json:"delegateTo" binding:"required"`
}

// ApprovalStepResponse is the public view of one approval step.
type ApprovalStepResponse struct {
	ID         uuid.UUID  `json:"id"`
	StepOrder  int        `json:"stepOrder"`
	Status     string     `json:"status"`
	ApproverID *uuid.UUID `json:"approverId,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	Comments   *string    `json:"comments,omitempty"`
}

// RequestResponse is the public view of a training request.
type RequestResponse struct {
	ID            uuid.UUID               `json:"id"`
	UserID        uuid.UUID               `json:"userId"`
	TrainingID    uuid.UUID               `json:"trainingId"`
	SessionID     *uuid.UUID              `json:"sessionId,omitempty"`
	Status        models.RequestStatus    `json:"status"`
	StatusInfo    models.StatusInfo       `json:"statusInfo"`
	Justification *string                 `json:"justification,omitempty"`
	SubmittedAt   *time.Time              `json:"submittedAt,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
	Training      *models.TrainingSummary `json:"training,omitempty"`
	Requester     *models.ProfileSummary  `json:"requester,omitempty"`
	ApprovalSteps []ApprovalStepResponse  `json:"approvalSteps,omitempty"`
}

// RequestListResponse is the filtered list view. Total counts matches before
// the page window is applied.
type RequestListResponse struct {
	Requests   []RequestResponse `json:"requests"`
	Total      int               `json:"total"`
	Pagination *PaginationInfo   `json:"pagination,omitempty"`
}

// TimelineEventResponse is one entry of a request's activity timeline.
type TimelineEventResponse struct {
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
	Comment string    `json:"comment,omitempty"`
	Status  string    `json:"status,omitempty"`
}

// RequestStatsResponse counts requests per status over the visible set.
type RequestStatsResponse struct {
	Total    int                          `json:"total"`
	ByStatus map[models.RequestStatus]int `json:"byStatus"`
}

// NewRequestResponse maps a model to its public view, attaching the
// centralized status display info.
func NewRequestResponse(r *models.Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		TrainingID:    r.TrainingID,
		SessionID:     r.SessionID,
		Status:        r.Status,
		StatusInfo:    r.Status.Info(),
		Justification: r.Justification,
		SubmittedAt:   r.SubmittedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Training:      r.Training,
		Requester:     r.Requester,
	}
	for _, step := range r.ApprovalSteps {
		resp.ApprovalSteps = append(resp.ApprovalSteps, ApprovalStepResponse{
			ID:         step.ID,
			StepOrder:  step.StepOrder,
			Status:     step.Status,
			ApproverID: step.ApproverID,
			ApprovedAt: step.ApprovedAt,
			Comments:   step.Comments,
		})
	}
	return resp
}
