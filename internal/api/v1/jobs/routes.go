package jobs

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/jobs")
	{
		group.GET("/:id", h.GetJob)
		group.DELETE("/:id", h.CancelJob)
	}
}
