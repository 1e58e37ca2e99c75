package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/app/models/dto"
	"github.com/hosteldesk/hosteldesk/internal/app/services"
	"github.com/hosteldesk/hosteldesk/internal/middleware"
)

// AdmissionController handles hostel application endpoints
type AdmissionController struct {
	admissionService *services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService *services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// SubmitAdmission handles applicant intake
// @Summary Submit a hostel application
// @Description Creates a new hostel application in pending status
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body dto.CreateAdmissionRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=models.AdmissionRecord} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid application data"
// @Failure 409 {object} dto.ErrorResponse "Enrollment already has an application"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions [post]
func (c *AdmissionController) SubmitAdmission(ctx *gin.Context) {
	var req dto.CreateAdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admission := models.AdmissionRecord{
		FullName:       req.FullName,
		Enrollment:     req.Enrollment,
		Email:          req.Email,
		Phone:          req.Phone,
		Department:     req.Department,
		Year:           req.Year,
		PrevMarks:      req.PrevMarks,
		Category:       req.Category,
		Gender:         req.Gender,
		PhotoURL:       req.PhotoURL,
		AdditionalData: req.AdditionalData,
	}

	if err := c.admissionService.Submit(ctx, &admission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      admission,
		Timestamp: time.Now(),
	})
}

// ListAdmissions retrieves applications
// @Summary List hostel applications
// @Description Retrieves applications, optionally filtered by review status
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, verified, accepted, rejected)
// @Success 200 {object} dto.APIResponse{data=[]models.AdmissionRecord} "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions [get]
func (c *AdmissionController) ListAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.List(ctx, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admissions,
		Timestamp: time.Now(),
	})
}

// GetAdmissionByID retrieves a single application
// @Summary Get application by ID
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=models.AdmissionRecord} "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid admission ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions/{id} [get]
func (c *AdmissionController) GetAdmissionByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admission ID")
		errorDetail = errorDetail.WithDetails("Admission ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admission, err := c.admissionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admission,
		Timestamp: time.Now(),
	})
}

// ReviewAdmission updates an application's review status
// @Summary Review a hostel application
// @Description Moves an application to verified, accepted or rejected
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admission ID"
// @Param request body dto.UpdateAdmissionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions/{id}/status [patch]
func (c *AdmissionController) ReviewAdmission(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admission ID")
		errorDetail = errorDetail.WithDetails("Admission ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateAdmissionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actor := middleware.ActorFromContext(ctx)
	if err := c.admissionService.Review(ctx, actor, id, models.AdmissionStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Admission status updated"},
		Timestamp: time.Now(),
	})
}
