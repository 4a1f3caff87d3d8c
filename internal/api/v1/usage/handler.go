package usage

import (
	"net/http"
	"strconv"

	"github.com/wegnite/saasTemplate/internal/middleware"
	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	usage *services.UsageService
}

func NewHandler(usage *services.UsageService) *Handler {
	return &Handler{usage: usage}
}

// Stats godoc
// @Summary Usage statistics
// @Description Credit consumption totals grouped by type and date
// @Tags usage
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=services.UsageSummary}
// @Router /usage/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	period := c.DefaultQuery("period", "month")
	summary, err := h.usage.Stats(user.ID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute usage stats"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Usage stats retrieved", summary))
}

// Trend returns the zero-filled daily spend series.
func (h *Handler) Trend(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 90 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "days must be between 1 and 90"))
		return
	}

	points, err := h.usage.CreditsTrend(user.ID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute trend"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Usage trend retrieved", points))
}

// Tools returns the most used feature types.
func (h *Handler) Tools(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "limit must be a positive integer"))
		return
	}

	tools, err := h.usage.MostUsedTools(user.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to rank tools"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Most used tools retrieved", tools))
}

// History returns the paginated credits ledger log.
func (h *Handler) History(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 || pageSize < 1 || pageSize > 100 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid pagination parameters"))
		return
	}

	logs, total, err := h.usage.History(user.ID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load usage history"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Usage history retrieved", gin.H{
		"logs":       logs,
		"pagination": utils.NewPagination(page, pageSize, total),
	}))
}
