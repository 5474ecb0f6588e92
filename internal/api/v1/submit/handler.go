package submit

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

// Submit godoc
// @Summary Submit a library entry
// @Description Queue a new library entry for review. Fields are checked in form order
// @Tags submit
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Submission"
// @Success 200 {object} utils.Response{data=models.Submission}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sub, err := h.workspace.Submit(c.Request.Context(), services.SubmissionInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Submission successful! We'll review this and get back to you in 48 hours.", sub)
}

// Preview godoc
// @Summary Preview markdown
// @Description Render the markdown body of the submit form
// @Tags submit
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Markdown body"
// @Success 200 {object} utils.Response{data=PreviewResponse}
// @Failure 400 {object} utils.Response
// @Router /submit/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	html, err := services.RenderPreview(req.Content)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Success", PreviewResponse{HTML: html})
}
