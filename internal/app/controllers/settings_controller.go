package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/app/models/dto"
	"github.com/hosteldesk/hosteldesk/internal/app/services"
	"github.com/hosteldesk/hosteldesk/internal/middleware"
)

// SettingsController handles merit list configuration endpoints
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetMeritListConfig returns the stored quota configuration
// @Summary Get merit list settings
// @Description Returns the seat counts per department and reservation percentages per category
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.QuotaConfig} "Settings retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Settings not configured yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/merit-list [get]
func (c *SettingsController) GetMeritListConfig(ctx *gin.Context) {
	cfg, err := c.settingsService.GetMeritListConfig(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cfg,
		Timestamp: time.Now(),
	})
}

// UpdateMeritListConfig replaces the quota configuration
// @Summary Update merit list settings
// @Description Stores new seat counts and reservation percentages for the next allocation run
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuotaConfigRequest true "Quota configuration"
// @Success 200 {object} dto.APIResponse{data=models.QuotaConfig} "Settings updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid configuration"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/merit-list [put]
func (c *SettingsController) UpdateMeritListConfig(ctx *gin.Context) {
	var req dto.QuotaConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid configuration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	cfg := models.QuotaConfig{
		DepartmentSeats:     req.DepartmentSeats,
		CategoryPercentages: req.CategoryPercentages,
	}

	actor := middleware.ActorFromContext(ctx)
	if err := c.settingsService.UpdateMeritListConfig(ctx, actor, &cfg); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cfg,
		Timestamp: time.Now(),
	})
}
