package library

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/library")
	{
		group.GET("", h.ListContent)
		group.GET("/:id", h.GetContent)
		group.GET("/:id/copy", h.CopyContent)
		group.GET("/:id/download", h.DownloadContent)
		group.POST("/:id/favorite", h.ToggleFavorite)
		group.POST("/:id/rating", h.RateContent)
	}
}
