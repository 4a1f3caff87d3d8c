package subscription

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	group := rg.Group("/subscription")
	{
		group.GET("", h.Get)
		group.POST("/plan", h.ChangePlan)
		group.POST("/cancel", h.Cancel)
		group.POST("/reactivate", h.Reactivate)
	}
}
