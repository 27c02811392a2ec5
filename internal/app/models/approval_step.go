package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval step outcomes. The column is free-form in the legacy schema;
// these are the values the workflow itself writes.
const (
	StepStatusPending  = "pending"
	StepStatusApproved = "approved"
	StepStatusRejected = "rejected"
)

// ApprovalStep is one stage of a request's approval chain, ordered by
// StepOrder (1-based). A step is immutable once ApprovedAt is set.
type ApprovalStep struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	RequestID  uuid.UUID  `json:"requestId" db:"request_id"`
	StepOrder  int        `json:"stepOrder" db:"step_order"`
	Status     string     `json:"status" db:"status"`
	ApproverID *uuid.UUID `json:"approverId,omitempty" db:"approver_id"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	Comments   *string    `json:"comments,omitempty" db:"comments"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// Resolved reports whether the step has been decided.
func (s *ApprovalStep) Resolved() bool {
	return s.ApprovedAt != nil
}
