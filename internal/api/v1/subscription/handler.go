package subscription

import (
	"errors"
	"net/http"

	"github.com/wegnite/saasTemplate/internal/middleware"
	"github.com/wegnite/saasTemplate/internal/models"
	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChangePlanRequest struct {
	Plan models.PlanType `json:"plan" binding:"required,oneof=FREE PRO ENTERPRISE"`
}

type Handler struct {
	subscriptions *services.SubscriptionService
}

func NewHandler(subscriptions *services.SubscriptionService) *Handler {
	return &Handler{subscriptions: subscriptions}
}

// Get godoc
// @Summary Get current subscription
// @Tags subscription
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=models.Subscription}
// @Failure 404 {object} utils.Response
// @Router /subscription [get]
func (h *Handler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	sub, err := h.subscriptions.Get(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No subscription"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load subscription"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Subscription retrieved", sub))
}

// ChangePlan switches the user's plan and grants the plan's credit
// allowance.
func (h *Handler) ChangePlan(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req ChangePlanRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	sub, err := h.subscriptions.ChangePlan(c.Request.Context(), user.ID, req.Plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to change plan"))
		return
	}

	if _, err := h.subscriptions.GrantPlanCredits(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Plan changed but credit grant failed"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plan changed", sub))
}

// Cancel flags the subscription to lapse at period end.
func (h *Handler) Cancel(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	sub, err := h.subscriptions.Cancel(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No subscription"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to cancel subscription"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Subscription will cancel at period end", sub))
}

// Reactivate clears a pending cancellation.
func (h *Handler) Reactivate(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	sub, err := h.subscriptions.Reactivate(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No subscription"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reactivate subscription"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Subscription reactivated", sub))
}
