package export

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/export")
	{
		group.POST("", h.Download)
		group.POST("/clipboard", h.Clipboard)
	}
}
