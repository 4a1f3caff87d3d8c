package tools

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wegnite/saasTemplate/internal/middleware"
	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	images *services.ImageService
	texts  *services.TextService
	audios *services.AudioService
}

func NewHandler(images *services.ImageService, texts *services.TextService, audios *services.AudioService) *Handler {
	return &Handler{images: images, texts: texts, audios: audios}
}

// simulatorStatus maps a failed simulator result onto an HTTP status. The
// Result boundary never panics, so the error string is the taxonomy.
func simulatorStatus(errMsg string) int {
	switch errMsg {
	case services.ErrInsufficientCredits.Error():
		return http.StatusPaymentRequired
	case services.ErrUserNotFound.Error():
		return http.StatusNotFound
	case "failed to save generation record", "failed to save processing record":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// GenerateImage godoc
// @Summary Generate images
// @Tags tools
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=services.ImageResult}
// @Failure 400 {object} utils.Response
// @Failure 402 {object} utils.Response
// @Router /tools/images [post]
func (h *Handler) GenerateImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req GenerateImageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result := h.images.Generate(user.ID, services.ImageGenerationParams{
		Prompt:      req.Prompt,
		Style:       req.Style,
		AspectRatio: req.AspectRatio,
		Quantity:    req.Quantity,
		Quality:     req.Quality,
	})
	if !result.Success {
		c.JSON(simulatorStatus(result.Error), utils.NewErrorResponse(simulatorStatus(result.Error), result.Error))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Images generated", result))
}

// RegenerateImage re-runs an earlier generation for its owner.
func (h *Handler) RegenerateImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid image id"))
		return
	}

	result := h.images.Regenerate(user.ID, uint(id))
	if !result.Success {
		c.JSON(simulatorStatus(result.Error), utils.NewErrorResponse(simulatorStatus(result.Error), result.Error))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Image regenerated", result))
}

// GenerateText godoc
// @Summary Generate text content
// @Tags tools
// @Security Bearer
// @Router /tools/text [post]
func (h *Handler) GenerateText(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req GenerateTextRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result := h.texts.Generate(user.ID, services.TextGenerationParams{
		Prompt:      req.Prompt,
		ContentType: req.ContentType,
		Tone:        req.Tone,
		Length:      req.Length,
		Quality:     req.Quality,
	})
	if !result.Success {
		c.JSON(simulatorStatus(result.Error), utils.NewErrorResponse(simulatorStatus(result.Error), result.Error))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Text generated", result))
}

// ProcessAudio godoc
// @Summary Process an audio file
// @Tags tools
// @Security Bearer
// @Router /tools/audio [post]
func (h *Handler) ProcessAudio(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req ProcessAudioRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result := h.audios.Process(user.ID, services.AudioProcessParams{
		ProcessType:   req.ProcessType,
		InputAudioURL: req.InputAudioURL,
		Language:      req.Language,
		VoiceID:       req.VoiceID,
		Text:          req.Text,
		Quality:       req.Quality,
	})
	if !result.Success {
		c.JSON(simulatorStatus(result.Error), utils.NewErrorResponse(simulatorStatus(result.Error), result.Error))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Audio processed", result))
}

func bindListQuery(c *gin.Context) (ListQuery, bool) {
	query := ListQuery{Page: 1, PageSize: 10}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid pagination parameters"))
		return query, false
	}
	return query, true
}

// ListImages returns the user's image generation history.
func (h *Handler) ListImages(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	images, total, err := h.images.List(user.ID, query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list images"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Images retrieved", gin.H{
		"images":     images,
		"pagination": utils.NewPagination(query.Page, query.PageSize, total),
	}))
}

func (h *Handler) ListTexts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	texts, total, err := h.texts.List(user.ID, query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list texts"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Texts retrieved", gin.H{
		"texts":      texts,
		"pagination": utils.NewPagination(query.Page, query.PageSize, total),
	}))
}

func (h *Handler) ListAudios(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	audios, total, err := h.audios.List(user.ID, query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list audio records"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Audio records retrieved", gin.H{
		"audios":     audios,
		"pagination": utils.NewPagination(query.Page, query.PageSize, total),
	}))
}

// GetAudio returns a single processing record after an ownership check.
func (h *Handler) GetAudio(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid audio id"))
		return
	}

	record, err := h.audios.Get(user.ID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRecordNotOwned) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Record does not belong to this user"))
			return
		}
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Audio record not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Audio record retrieved", record))
}
