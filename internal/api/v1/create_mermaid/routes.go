package create_mermaid

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/create-mermaid")
	{
		group.GET("/options", h.GetOptions)
		group.GET("/examples/:type", h.GetExample)
		group.POST("/generate", h.Generate)
		group.POST("/drafts", h.SaveDraft)
		group.POST("/submit", h.Submit)
	}
}
