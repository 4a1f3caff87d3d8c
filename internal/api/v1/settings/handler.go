package settings

import (
	"net/http"

	"github.com/wegnite/saasTemplate/internal/middleware"
	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/utils"

	"github.com/gin-gonic/gin"
)

// UpdateRequest uses pointers so absent fields are left untouched.
type UpdateRequest struct {
	Theme              *string `json:"theme" binding:"omitempty,oneof=dark light system"`
	Language           *string `json:"language" binding:"omitempty,oneof=zh en"`
	EmailNotifications *bool   `json:"emailNotifications"`
	DefaultImageStyle  *string `json:"defaultImageStyle"`
	DefaultAspectRatio *string `json:"defaultAspectRatio" binding:"omitempty,oneof=1:1 16:9 9:16 4:3"`
}

type Handler struct {
	settings *services.SettingsService
}

func NewHandler(settings *services.SettingsService) *Handler {
	return &Handler{settings: settings}
}

// Get godoc
// @Summary Get user settings
// @Description Returns the user's preferences, creating defaults on first access
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=models.UserSetting}
// @Router /settings [get]
func (h *Handler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	settings, err := h.settings.Get(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load settings"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Settings retrieved", settings))
}

// Update applies the provided preference changes.
func (h *Handler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req UpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	settings, err := h.settings.Update(user.ID, services.SettingsUpdate{
		Theme:              req.Theme,
		Language:           req.Language,
		EmailNotifications: req.EmailNotifications,
		DefaultImageStyle:  req.DefaultImageStyle,
		DefaultAspectRatio: req.DefaultAspectRatio,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update settings"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Settings updated", settings))
}

// Reset restores all preferences to defaults.
func (h *Handler) Reset(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	settings, err := h.settings.Reset(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reset settings"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Settings reset", settings))
}
