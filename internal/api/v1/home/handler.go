package home

import (
	"promptshq/internal/api/v1/common"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *services.CatalogService
}

func NewHandler(catalog *services.CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

// GetHome godoc
// @Summary Landing page
// @Description Return the landing page counters and feature cards
// @Tags home
// @Produce json
// @Success 200 {object} utils.Response{data=HomeResponse}
// @Failure 500 {object} utils.Response
// @Router /home [get]
func (h *Handler) GetHome(c *gin.Context) {
	stats, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Success", HomeResponse{Stats: stats, Features: features})
}
