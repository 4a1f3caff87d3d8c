package webhooks

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook endpoint. It is public: verification
// happens via the delivery signature, not a session token.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/webhooks/clerk", h.HandleClerk)
}
