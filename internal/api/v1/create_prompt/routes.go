package create_prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/create-prompt")
	{
		group.GET("/options", h.GetOptions)
		group.POST("/enhance", h.Enhance)
		group.POST("/drafts", h.SaveDraft)
		group.POST("/submit", h.Submit)
	}
}
