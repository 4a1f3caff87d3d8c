package tools

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	group := rg.Group("/tools")
	{
		group.POST("/images", h.GenerateImage)
		group.POST("/images/:id/regenerate", h.RegenerateImage)
		group.GET("/images", h.ListImages)

		group.POST("/text", h.GenerateText)
		group.GET("/text", h.ListTexts)

		group.POST("/audio", h.ProcessAudio)
		group.GET("/audio", h.ListAudios)
		group.GET("/audio/:id", h.GetAudio)
	}
}
