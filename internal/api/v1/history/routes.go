package history

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	group := rg.Group("/history")
	{
		group.GET("/recent", h.Recent)
		group.DELETE("/image/:id", h.DeleteImage)
		group.DELETE("/text/:id", h.DeleteText)
		group.DELETE("/audio/:id", h.DeleteAudio)
	}
}
