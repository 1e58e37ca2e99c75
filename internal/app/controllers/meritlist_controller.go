package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/hosteldesk/internal/app/models/dto"
	"github.com/hosteldesk/hosteldesk/internal/app/services"
	"github.com/hosteldesk/hosteldesk/internal/middleware"
)

// MeritListController handles allocation runs and the list lifecycle
type MeritListController struct {
	meritListService *services.MeritListService
}

// NewMeritListController creates a new MeritListController
func NewMeritListController(meritListService *services.MeritListService) *MeritListController {
	return &MeritListController{
		meritListService: meritListService,
	}
}

// GenerateMeritLists runs the allocation engine
// @Summary Generate merit lists
// @Description Runs seat allocation over all accepted applications and saves one draft list per department
// @Tags merit-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=dto.GenerateMeritListsResponse} "Lists generated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 422 {object} dto.ErrorResponse "Settings missing or no eligible applicants"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /merit-lists/generate [post]
func (c *MeritListController) GenerateMeritLists(ctx *gin.Context) {
	actor := middleware.ActorFromContext(ctx)
	lists, err := c.meritListService.Generate(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.GenerateMeritListsResponse{
		Departments: len(lists),
		Lists:       lists,
	}
	if len(lists) > 0 {
		resp.RunID = lists[0].RunID
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// ListMeritLists returns the role-appropriate view over current lists
// @Summary List merit lists
// @Description Wardens get their hostel's slice of each current list, the rector gets current non-draft lists
// @Tags merit-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostel query string false "Hostel key to narrow the rector view"
// @Success 200 {object} dto.APIResponse{data=[]models.MeritList} "Lists retrieved"
// @Failure 400 {object} dto.ErrorResponse "Unknown hostel key"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /merit-lists [get]
func (c *MeritListController) ListMeritLists(ctx *gin.Context) {
	actor := middleware.ActorFromContext(ctx)
	lists, err := c.meritListService.ListForActor(ctx, actor, ctx.Query("hostel"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lists,
		Timestamp: time.Now(),
	})
}

// PendingMeritLists returns the warden's review queue
// @Summary List pending merit lists
// @Description Returns the current draft lists still waiting to be sent for review, scoped to the warden's hostel
// @Tags merit-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MeritList} "Pending lists retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /merit-lists/pending [get]
func (c *MeritListController) PendingMeritLists(ctx *gin.Context) {
	actor := middleware.ActorFromContext(ctx)
	lists, err := c.meritListService.PendingForWarden(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lists,
		Timestamp: time.Now(),
	})
}

// SendForReview forwards a draft list to the rector
// @Summary Send a merit list for review
// @Tags merit-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Merit list ID"
// @Success 200 {object} dto.APIResponse{data=models.MeritList} "List sent for review"
// @Failure 400 {object} dto.ErrorResponse "Invalid list ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "List not found"
// @Failure 409 {object} dto.ErrorResponse "List already moved on"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /merit-lists/{id}/send-for-review [post]
func (c *MeritListController) SendForReview(ctx *gin.Context) {
	id, ok := c.listID(ctx)
	if !ok {
		return
	}

	actor := middleware.ActorFromContext(ctx)
	list, err := c.meritListService.SendForReview(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// Publish finalizes a reviewed list and dispatches student credentials
// @Summary Publish a merit list
// @Description Publishes a reviewed list and emails login credentials to every selected student
// @Tags merit-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Merit list ID"
// @Success 200 {object} dto.APIResponse{data=models.MeritList} "List published"
// @Failure 400 {object} dto.ErrorResponse "Invalid list ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "List not found"
// @Failure 409 {object} dto.ErrorResponse "List not in review or already moved on"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /merit-lists/{id}/publish [post]
func (c *MeritListController) Publish(ctx *gin.Context) {
	id, ok := c.listID(ctx)
	if !ok {
		return
	}

	actor := middleware.ActorFromContext(ctx)
	list, err := c.meritListService.Publish(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// DispatchCredentials re-runs credential dispatch for a published list
// @Summary Re-dispatch student credentials
// @Description Re-sends credentials for a published list, skipping students already credentialed
// @Tags merit-lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Merit list ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Dispatch completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid list ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "List not found"
// @Failure 409 {object} dto.ErrorResponse "List not published"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /merit-lists/{id}/dispatch-credentials [post]
func (c *MeritListController) DispatchCredentials(ctx *gin.Context) {
	id, ok := c.listID(ctx)
	if !ok {
		return
	}

	actor := middleware.ActorFromContext(ctx)
	if err := c.meritListService.RedispatchCredentials(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Credential dispatch completed"},
		Timestamp: time.Now(),
	})
}

func (c *MeritListController) listID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid merit list ID")
		errorDetail = errorDetail.WithDetails("Merit list ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
