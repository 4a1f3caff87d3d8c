package usage

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	group := rg.Group("/usage")
	{
		group.GET("/stats", h.Stats)
		group.GET("/trend", h.Trend)
		group.GET("/tools", h.Tools)
		group.GET("/history", h.History)
	}
}
