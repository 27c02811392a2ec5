package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appauth "github.com/formadesk/formadesk/internal/app/auth"
	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/middleware"
	"github.com/formadesk/formadesk/internal/pkg/helpers"
)

// RequestController handles training request operations
type RequestController struct {
	requestService services.RequestService
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService services.RequestService) *RequestController {
	return &RequestController{requestService: requestService}
}

// parseStatusFilter splits a comma-separated status query into the typed set.
func parseStatusFilter(raw string) []models.RequestStatus {
	if raw == "" {
		return nil
	}

	var statuses []models.RequestStatus
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			statuses = append(statuses, models.RequestStatus(part))
		}
	}
	return statuses
}

// GetAllRequests handles the filtered request listing
// @Summary List training requests
// @Description Lists requests visible to the caller, filtered by queue scope, status set and free-text search.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param queue query string false "Queue scope: my, team or all" default(all)
// @Param status query string false "Comma-separated status filter"
// @Param search query string false "Free-text search over training title and requester"
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.RequestListResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /requests [get]
func (c *RequestController) GetAllRequests(ctx *gin.Context) {
	viewerID, _ := middleware.UserIDFromContext(ctx)
	queue := services.QueueFilter(ctx.DefaultQuery("queue", string(services.QueueAll)))
	statuses := parseStatusFilter(ctx.Query("status"))
	search := ctx.Query("search")
	page, size := helpers.ParsePaginationParams(ctx)

	requests, err := c.requestService.ListRequests(ctx, viewerID, queue, statuses, search)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Filtering happens in memory, so the page window is sliced here too.
	total := len(requests)
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	if int(offset) >= total {
		requests = nil
	} else {
		end := int(offset) + limit
		if end > total {
			end = total
		}
		requests = requests[offset:end]
	}

	pagination := helpers.NewPaginationInfo(int64(total), page, size)
	response := dto.RequestListResponse{
		Requests:   make([]dto.RequestResponse, 0, len(requests)),
		Total:      total,
		Pagination: &pagination,
	}
	for i := range requests {
		response.Requests = append(response.Requests, dto.NewRequestResponse(&requests[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetRequestByID handles retrieving one request
// @Summary Get a training request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /requests/{id} [get]
func (c *RequestController) GetRequestByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.requestService.GetRequest(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// CreateRequest handles opening a new draft request
// @Summary Create a training request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRequestRequest true "Request payload"
// @Success 201 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /requests [post]
func (c *RequestController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateRequestRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(ctx)

	request, err := c.requestService.CreateRequest(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// SubmitRequest handles moving a draft to submitted
// @Summary Submit a draft request
// @Description Moves a draft to submitted, stamps the submission time and opens the first approval step.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /requests/{id}/submit [post]
func (c *RequestController) SubmitRequest(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.requestService.SubmitRequest(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// StartReview handles moving a submitted request under review
// @Summary Start reviewing a request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /requests/{id}/review [post]
func (c *RequestController) StartReview(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.requestService.StartReview(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// ApproveRequest handles an approval decision
// @Summary Approve a request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param decision body dto.DecisionRequest false "Optional comment"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /requests/{id}/approve [post]
func (c *RequestController) ApproveRequest(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	// The comment is optional; an empty body is fine.
	var req dto.DecisionRequest
	_ = ctx.ShouldBindJSON(&req)

	approverID, _ := middleware.UserIDFromContext(ctx)

	request, err := c.requestService.ApproveRequest(ctx, id, approverID, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// RejectRequest handles a rejection decision
// @Summary Reject a request
// @Description Rejects a request. A non-empty comment is mandatory and checked before anything is written.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param decision body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing rejection reason"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /requests/{id}/reject [post]
func (c *RequestController) RejectRequest(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RejectRequest
	_ = ctx.ShouldBindJSON(&req)

	approverID, _ := middleware.UserIDFromContext(ctx)

	request, err := c.requestService.RejectRequest(ctx, id, approverID, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// DelegateRequest hands the pending approval to another user
// @Summary Delegate a request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param delegation body dto.DelegateRequest true "Delegate target"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 400 {object} dto.ErrorResponse "No delegate selected"
// @Router /requests/{id}/delegate [post]
func (c *RequestController) DelegateRequest(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.DelegateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	request, err := c.requestService.DelegateRequest(ctx, id, req.DelegateTo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// UpdateRequestStatus applies a bare lifecycle transition
// @Summary Update request status
// @Description Moves an approved request to scheduled or completed. The transition table is enforced.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param status body object{status=string} true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.RequestResponse}
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /requests/{id}/status [patch]
func (c *RequestController) UpdateRequestStatus(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		Status models.RequestStatus `json:"status" binding:"required"`
	}
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	request, err := c.requestService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRequestResponse(request)))
}

// GetRequestTimeline returns the activity timeline of one request
// @Summary Get request timeline
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.TimelineEventResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /requests/{id}/timeline [get]
func (c *RequestController) GetRequestTimeline(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	timeline, err := c.requestService.GetTimeline(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(timeline))
}

// GetRequestStats returns per-status request counts
// @Summary Get request statistics
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RequestStatsResponse}
// @Router /requests/stats [get]
func (c *RequestController) GetRequestStats(ctx *gin.Context) {
	stats, err := c.requestService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetDelegateCandidates lists users a pending approval can be handed to
// @Summary List delegate candidates
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ProfileResponse}
// @Router /requests/delegates [get]
func (c *RequestController) GetDelegateCandidates(ctx *gin.Context) {
	profiles, err := c.requestService.ListDelegateCandidates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	candidates := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		candidates = append(candidates, dto.ProfileResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(candidates))
}

// GetRequestEligibility reports whether the caller may decide on the request inline
// @Summary Check quick-action eligibility
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse
// @Router /requests/{id}/eligibility [get]
func (c *RequestController) GetRequestEligibility(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.requestService.GetRequest(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	roles, _ := middleware.RolesFromContext(ctx)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"canDecide": appauth.CanQuickDecide(roles, request.Status),
	}))
}

// parseUUIDParam reads a UUID path parameter, writing a validation error
// response when it is malformed.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}
