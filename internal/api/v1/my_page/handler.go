package my_page

import (
	"promptshq/internal/api/v1/common"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	workspace *services.WorkspaceService
}

func NewHandler(workspace *services.WorkspaceService) *Handler {
	return &Handler{workspace: workspace}
}

// GetDashboard godoc
// @Summary User dashboard
// @Description Return the user's counters, submissions, favorites and drafts
// @Tags my-page
// @Produce json
// @Success 200 {object} utils.Response{data=services.Dashboard}
// @Failure 500 {object} utils.Response
// @Router /my-page [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	dash, err := h.workspace.Dashboard(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Success", dash)
}
