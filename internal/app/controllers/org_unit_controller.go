package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/middleware"
)

// OrgUnitController handles organizational unit operations
type OrgUnitController struct {
	orgUnitService services.OrgUnitService
}

// NewOrgUnitController creates a new OrgUnitController
func NewOrgUnitController(orgUnitService services.OrgUnitService) *OrgUnitController {
	return &OrgUnitController{orgUnitService: orgUnitService}
}

// GetAllOrgUnits lists organizational units
// @Summary List organizational units
// @Tags org-units
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /org-units [get]
func (c *OrgUnitController) GetAllOrgUnits(ctx *gin.Context) {
	units, err := c.orgUnitService.GetAllOrgUnits(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(units))
}

// GetOrgUnitByID retrieves one organizational unit
// @Summary Get organizational unit by ID
// @Tags org-units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organizational unit ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /org-units/{id} [get]
func (c *OrgUnitController) GetOrgUnitByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	unit, err := c.orgUnitService.GetOrgUnitByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(unit))
}

// CreateOrgUnit creates an organizational unit
// @Summary Create an organizational unit
// @Tags org-units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrgUnitRequest true "Organizational unit payload"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Code already in use"
// @Router /org-units [post]
func (c *OrgUnitController) CreateOrgUnit(ctx *gin.Context) {
	var req dto.CreateOrgUnitRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	unit, err := c.orgUnitService.CreateOrgUnit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(unit))
}

// UpdateOrgUnit modifies an organizational unit
// @Summary Update an organizational unit
// @Tags org-units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organizational unit ID"
// @Param request body dto.UpdateOrgUnitRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /org-units/{id} [put]
func (c *OrgUnitController) UpdateOrgUnit(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrgUnitRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	unit, err := c.orgUnitService.UpdateOrgUnit(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(unit))
}

// DeleteOrgUnit removes an organizational unit
// @Summary Delete an organizational unit
// @Tags org-units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organizational unit ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /org-units/{id} [delete]
func (c *OrgUnitController) DeleteOrgUnit(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.orgUnitService.DeleteOrgUnit(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Organizational unit deleted"))
}
