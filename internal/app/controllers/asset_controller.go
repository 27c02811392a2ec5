package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/middleware"
)

// AssetController handles computer asset operations
type AssetController struct {
	assetService services.AssetService
}

// NewAssetController creates a new AssetController
func NewAssetController(assetService services.AssetService) *AssetController {
	return &AssetController{assetService: assetService}
}

// GetAllAssets lists assets
// @Summary List computer assets
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /assets [get]
func (c *AssetController) GetAllAssets(ctx *gin.Context) {
	assets, err := c.assetService.GetAllAssets(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assets))
}

// GetAssetByID retrieves one asset
// @Summary Get asset by ID
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assets/{id} [get]
func (c *AssetController) GetAssetByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.GetAssetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(asset))
}

// CreateAsset registers an asset
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssetRequest true "Asset payload"
// @Success 201 {object} dto.APIResponse
// @Router /assets [post]
func (c *AssetController) CreateAsset(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	asset, err := c.assetService.CreateAsset(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(asset))
}

// UpdateAsset modifies an asset
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Param request body dto.UpdateAssetRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assets/{id} [put]
func (c *AssetController) UpdateAsset(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	asset, err := c.assetService.UpdateAsset(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(asset))
}

// DeleteAsset removes an asset
// @Summary Delete an asset
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assets/{id} [delete]
func (c *AssetController) DeleteAsset(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assetService.DeleteAsset(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Asset deleted"))
}
