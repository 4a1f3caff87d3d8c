package webhooks

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/utils"
	"github.com/wegnite/saasTemplate/internal/webhook"
	"github.com/wegnite/saasTemplate/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBodyBytes = int64(65536)

// clerkEvent is the envelope of an identity-provider delivery.
type clerkEvent struct {
	Type string         `json:"type"`
	Data clerkEventData `json:"data"`
}

type clerkEventData struct {
	ID             string              `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	ImageURL       string              `json:"image_url"`
	EmailAddresses []clerkEmailAddress `json:"email_addresses"`
}

type clerkEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

func (d clerkEventData) primaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

type Handler struct {
	verifier *webhook.Verifier
	users    *services.UserService
}

func NewHandler(verifier *webhook.Verifier, users *services.UserService) *Handler {
	return &Handler{verifier: verifier, users: users}
}

// HandleClerk godoc
// @Summary Identity provider webhook
// @Description Verifies and applies a signed user lifecycle event
// @Tags webhooks
// @Accept json
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /webhooks/clerk [post]
func (h *Handler) HandleClerk(c *gin.Context) {
	msgID := c.GetHeader(webhook.HeaderID)
	timestamp := c.GetHeader(webhook.HeaderTimestamp)
	signature := c.GetHeader(webhook.HeaderSignature)
	if msgID == "" || timestamp == "" || signature == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing webhook signature headers"))
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid payload"))
		return
	}

	if err := h.verifier.Verify(body, msgID, timestamp, signature); err != nil {
		logger.Log.Warn("webhook verification failed",
			zap.String("svix_id", msgID), zap.Error(err))
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Signature verification failed"))
		return
	}

	var event clerkEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Malformed event payload"))
		return
	}

	switch event.Type {
	case "user.created", "user.updated":
		email := event.Data.primaryEmail()
		if event.Data.ID == "" || email == "" {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing required user data"))
			return
		}

		profile := services.UserProfile{
			Email:           email,
			FirstName:       event.Data.FirstName,
			LastName:        event.Data.LastName,
			ProfileImageURL: event.Data.ImageURL,
		}
		if _, err := h.users.UpsertByClerkID(c.Request.Context(), event.Data.ID, profile); err != nil {
			logger.Log.Error("webhook user upsert failed",
				zap.String("svix_id", msgID), zap.String("clerk_id", event.Data.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Database operation failed"))
			return
		}

	case "user.deleted":
		if event.Data.ID == "" {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing required user data"))
			return
		}

		if err := h.users.DeleteByClerkID(c.Request.Context(), event.Data.ID); err != nil {
			// Acknowledge anyway: redelivering a deletion cannot heal a
			// store failure, it only produces a redelivery storm.
			logger.Log.Error("webhook user deletion failed",
				zap.String("svix_id", msgID), zap.String("clerk_id", event.Data.ID), zap.Error(err))
		}

	default:
		logger.Log.Info("ignoring webhook event",
			zap.String("svix_id", msgID), zap.String("type", event.Type))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Event processed", nil))
}
