package submit

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/submit")
	{
		group.POST("", h.Submit)
		group.POST("/preview", h.Preview)
	}
}
