package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/middleware"
)

// TrainingController handles training catalog operations
type TrainingController struct {
	trainingService services.TrainingService
	sessionService  services.SessionService
}

// NewTrainingController creates a new TrainingController
func NewTrainingController(trainingService services.TrainingService, sessionService services.SessionService) *TrainingController {
	return &TrainingController{
		trainingService: trainingService,
		sessionService:  sessionService,
	}
}

// GetAllTrainings lists catalog entries
// @Summary List trainings
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status (active, archived)"
// @Param search query string false "Search in title and description"
// @Success 200 {object} dto.APIResponse
// @Router /trainings [get]
func (c *TrainingController) GetAllTrainings(ctx *gin.Context) {
	filter := &dto.TrainingFilterRequest{}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	trainings, err := c.trainingService.GetAllTrainings(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(trainings))
}

// GetTrainingByID retrieves one catalog entry
// @Summary Get training by ID
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trainings/{id} [get]
func (c *TrainingController) GetTrainingByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	training, err := c.trainingService.GetTrainingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(training))
}

// GetTrainingSessions lists the sessions of one training
// @Summary List the sessions of a training
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trainings/{id}/sessions [get]
func (c *TrainingController) GetTrainingSessions(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	sessions, err := c.sessionService.GetSessionsByTraining(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sessions))
}

// CreateTraining adds a catalog entry
// @Summary Create a training
// @Tags trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTrainingRequest true "Training payload"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /trainings [post]
func (c *TrainingController) CreateTraining(ctx *gin.Context) {
	var req dto.CreateTrainingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(ctx)

	training, err := c.trainingService.CreateTraining(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(training))
}

// UpdateTraining modifies a catalog entry
// @Summary Update a training
// @Tags trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training ID"
// @Param request body dto.UpdateTrainingRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trainings/{id} [put]
func (c *TrainingController) UpdateTraining(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTrainingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	training, err := c.trainingService.UpdateTraining(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(training))
}

// DeleteTraining removes a catalog entry
// @Summary Delete a training
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trainings/{id} [delete]
func (c *TrainingController) DeleteTraining(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.trainingService.DeleteTraining(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Training deleted"))
}
