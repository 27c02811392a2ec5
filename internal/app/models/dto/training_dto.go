package dto

// CreateTrainingRequest is the payload to add a catalog entry.
type CreateTrainingRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Provider      *string  `json:"provider,omitempty"`
	Cost          *float64 `json:"cost,omitempty" binding:"omitempty,gte=0"`
	DurationHours *int     `json:"durationHours,omitempty" binding:"omitempty,gte=0"`
	Status        string   `json:"status" binding:"omitempty,oneof=active archived"`
}

// UpdateTrainingRequest is the payload to modify a catalog entry. Nil fields
// are left unchanged.
type UpdateTrainingRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Provider      *string  `json:"provider,omitempty"`
	Cost          *float64 `json:"cost,omitempty" binding:"omitempty,gte=0"`
	DurationHours *int     `json:"durationHours,omitempty" binding:"omitempty,gte=0"`
	Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=active archived"`
}

// TrainingFilterRequest narrows the catalog list.
type TrainingFilterRequest struct {
	Status   *string
	Category *string
	Search   *string
	Page     int
	PageSize int
}
