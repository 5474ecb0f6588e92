package ai_model

import (
	"promptshq/internal/api/v1/common"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	models *services.AIModelService
}

func NewHandler(models *services.AIModelService) *Handler {
	return &Handler{models: models}
}

// GetModels godoc
// @Summary List AI models
// @Description List the target models, optionally filtered by name and status
// @Tags ai-models
// @Produce json
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by status" Enums(open, closed)
// @Success 200 {object} utils.Response{data=AIModelListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /ai-models [get]
func (h *Handler) GetModels(c *gin.Context) {
	list, err := h.models.FindAIModels(c.Request.Context(), services.AIModelFilter{
		Name:   c.Query("name"),
		Status: c.Query("status"),
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	items := make([]AIModelListItem, 0, len(list))
	for _, m := range list {
		items = append(items, AIModelListItem{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Status:      m.Status,
		})
	}

	utils.Success(c, "Success", AIModelListResponse{Models: items, Total: len(items)})
}
