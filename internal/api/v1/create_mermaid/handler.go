package create_mermaid

import (
	"net/http"

	"promptshq/internal/api/v1/common"
	"promptshq/internal/middleware"
	"promptshq/internal/models"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	generation *services.GenerationService
	workspace  *services.WorkspaceService
}

func NewHandler(generation *services.GenerationService, workspace *services.WorkspaceService) *Handler {
	return &Handler{generation: generation, workspace: workspace}
}

// GetOptions godoc
// @Summary Diagram page options
// @Description Return the diagram types of the create-mermaid page
// @Tags create-mermaid
// @Produce json
// @Success 200 {object} utils.Response{data=OptionsResponse}
// @Router /create-mermaid/options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	types := make([]DiagramTypeItem, 0, len(models.DiagramTypes))
	for _, t := range models.DiagramTypes {
		types = append(types, DiagramTypeItem{Value: t, Label: t.Label(), Description: t.Description()})
	}
	utils.Success(c, "Success", OptionsResponse{Types: types})
}

// GetExample godoc
// @Summary Load a diagram example
// @Description Return the sample description behind "load example"
// @Tags create-mermaid
// @Produce json
// @Param type path string true "Diagram type"
// @Success 200 {object} utils.Response{data=ExampleResponse}
// @Failure 400 {object} utils.Response
// @Router /create-mermaid/examples/{type} [get]
func (h *Handler) GetExample(c *gin.Context) {
	dt := models.DiagramType(c.Param("type"))
	example, err := services.DiagramExample(dt)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Example loaded!", ExampleResponse{Type: dt, Description: example})
}

// Generate godoc
// @Summary Generate a Mermaid diagram
// @Description Schedule a diagram generation for the caller's session. A second call while one is pending returns that job
// @Tags create-mermaid
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser tab session"
// @Param request body GenerateRequest true "Diagram request"
// @Success 202 {object} utils.Response{data=JobResponse}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /create-mermaid/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	job, started, err := h.generation.StartDiagram(c.Request.Context(), middleware.SessionID(c), services.DiagramInput{
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	message := "Generating your diagram..."
	if !started {
		message = "Your diagram is already being generated."
	}
	c.JSON(http.StatusAccepted, utils.NewResponse(http.StatusAccepted, message, JobResponse{Job: job, Started: started}))
}

// SaveDraft godoc
// @Summary Save a diagram draft
// @Description Keep the generated diagram as a draft
// @Tags create-mermaid
// @Accept json
// @Produce json
// @Param request body DiagramRequest true "Generated diagram"
// @Success 200 {object} utils.Response{data=models.Draft}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /create-mermaid/drafts [post]
func (h *Handler) SaveDraft(c *gin.Context) {
	var req DiagramRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	draft, err := h.workspace.SaveDiagramDraft(c.Request.Context(), req.input())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Saved to drafts!", draft)
}

// Submit godoc
// @Summary Submit a diagram
// @Description Send the generated diagram to the library review queue
// @Tags create-mermaid
// @Accept json
// @Produce json
// @Param request body DiagramRequest true "Generated diagram"
// @Success 200 {object} utils.Response{data=models.Submission}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /create-mermaid/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req DiagramRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sub, err := h.workspace.SubmitDiagram(c.Request.Context(), req.input())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Submitted to library!", sub)
}
