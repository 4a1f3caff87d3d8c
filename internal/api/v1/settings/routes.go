package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	group := rg.Group("/settings")
	{
		group.GET("", h.Get)
		group.PUT("", h.Update)
		group.POST("/reset", h.Reset)
	}
}
