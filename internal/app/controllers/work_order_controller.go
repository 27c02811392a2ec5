package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/middleware"
)

// WorkOrderController handles IT work order operations
type WorkOrderController struct {
	workOrderService services.WorkOrderService
}

// NewWorkOrderController creates a new WorkOrderController
func NewWorkOrderController(workOrderService services.WorkOrderService) *WorkOrderController {
	return &WorkOrderController{workOrderService: workOrderService}
}

// GetAllWorkOrders lists work orders
// @Summary List work orders
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /work-orders [get]
func (c *WorkOrderController) GetAllWorkOrders(ctx *gin.Context) {
	orders, err := c.workOrderService.GetAllWorkOrders(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(orders))
}

// GetWorkOrderByID retrieves one work order
// @Summary Get work order by ID
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /work-orders/{id} [get]
func (c *WorkOrderController) GetWorkOrderByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	order, err := c.workOrderService.GetWorkOrderByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(order))
}

// CreateWorkOrder opens a work order
// @Summary Create a work order
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWorkOrderRequest true "Work order payload"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Router /work-orders [post]
func (c *WorkOrderController) CreateWorkOrder(ctx *gin.Context) {
	var req dto.CreateWorkOrderRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(ctx)

	order, err := c.workOrderService.CreateWorkOrder(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(order))
}

// UpdateWorkOrderStatus moves a work order to a new status
// @Summary Update work order status
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param request body dto.UpdateWorkOrderStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /work-orders/{id}/status [patch]
func (c *WorkOrderController) UpdateWorkOrderStatus(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkOrderStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	order, err := c.workOrderService.UpdateWorkOrderStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(order))
}

// DeleteWorkOrder removes a work order
// @Summary Delete a work order
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /work-orders/{id} [delete]
func (c *WorkOrderController) DeleteWorkOrder(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.workOrderService.DeleteWorkOrder(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Work order deleted"))
}
