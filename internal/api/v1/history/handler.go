package history

import (
	"net/http"
	"strconv"

	"github.com/wegnite/saasTemplate/internal/middleware"
	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	history *services.HistoryService
}

func NewHandler(history *services.HistoryService) *Handler {
	return &Handler{history: history}
}

// Recent godoc
// @Summary Recent generation history
// @Description Merged feed of the latest image, text and audio records
// @Tags history
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]services.HistoryItem}
// @Router /history/recent [get]
func (h *Handler) Recent(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 50 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "limit must be between 1 and 50"))
		return
	}

	items, err := h.history.Recent(user.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load history"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("History retrieved", items))
}

func (h *Handler) deleteRecord(c *gin.Context, del func(userID, id uint) error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid record id"))
		return
	}

	if err := del(user.ID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete record"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Record deleted", nil))
}

func (h *Handler) DeleteImage(c *gin.Context) {
	h.deleteRecord(c, h.history.DeleteImage)
}

func (h *Handler) DeleteText(c *gin.Context) {
	h.deleteRecord(c, h.history.DeleteText)
}

func (h *Handler) DeleteAudio(c *gin.Context) {
	h.deleteRecord(c, h.history.DeleteAudio)
}
