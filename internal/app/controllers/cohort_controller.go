package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/middleware"
)

// CohortController handles cohort operations
type CohortController struct {
	cohortService services.CohortService
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService services.CohortService) *CohortController {
	return &CohortController{cohortService: cohortService}
}

// GetAllCohorts lists cohorts
// @Summary List cohorts
// @Tags cohorts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /cohorts [get]
func (c *CohortController) GetAllCohorts(ctx *gin.Context) {
	cohorts, err := c.cohortService.GetAllCohorts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cohorts))
}

// GetCohortByID retrieves one cohort
// @Summary Get cohort by ID
// @Tags cohorts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cohort ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cohorts/{id} [get]
func (c *CohortController) GetCohortByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	cohort, err := c.cohortService.GetCohortByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cohort))
}

// CreateCohort creates a cohort
// @Summary Create a cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCohortRequest true "Cohort payload"
// @Success 201 {object} dto.APIResponse
// @Router /cohorts [post]
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var req dto.CreateCohortRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	cohort, err := c.cohortService.CreateCohort(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(cohort))
}

// UpdateCohort modifies a cohort
// @Summary Update a cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cohort ID"
// @Param request body dto.UpdateCohortRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cohorts/{id} [put]
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCohortRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	cohort, err := c.cohortService.UpdateCohort(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cohort))
}

// DeleteCohort removes a cohort
// @Summary Delete a cohort
// @Tags cohorts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cohort ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cohorts/{id} [delete]
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.cohortService.DeleteCohort(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Cohort deleted"))
}
