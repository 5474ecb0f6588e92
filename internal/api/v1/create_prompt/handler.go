package create_prompt

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
	aiModels   *services.AIModelService
}

func NewHandler(generation *services.GenerationService, workspace *services.WorkspaceService, aiModels *services.AIModelService) *Handler {
	return &Handler{generation: generation, workspace: workspace, aiModels: aiModels}
}

// GetOptions godoc
// @Summary Prompt page options
// @Description Return the models, enhancements, content types and categories of the create-prompt page
// @Tags create-prompt
// @Produce json
// @Success 200 {object} utils.Response{data=OptionsResponse}
// @Failure 500 {object} utils.Response
// @Router /create-prompt/options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	names, err := h.aiModels.OpenModelNames(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	enhancements := make([]EnhancementOptionItem, 0, len(models.EnhancementOptions))
	for _, o := range models.EnhancementOptions {
		enhancements = append(enhancements, EnhancementOptionItem{Value: o, Label: o.Label(), Description: o.Description()})
	}

	utils.Success(c, "Success", OptionsResponse{
		Models:       names,
		Enhancements: enhancements,
		ContentTypes: models.ContentTypes,
		Categories:   models.Categories,
	})
}

// Enhance godoc
// @Summary Enhance a prompt
// @Description Schedule a prompt enhancement. The client polls the job until it completes. A second click while one is pending returns that job
// @Tags create-prompt
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser tab session"
// @Param request body EnhanceRequest true "Enhancement request"
// @Success 202 {object} utils.Response{data=JobResponse}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /create-prompt/enhance [post]
func (h *Handler) Enhance(c *gin.Context) {
	var req EnhanceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	job, started, err := h.generation.StartEnhance(c.Request.Context(), middleware.SessionID(c), services.EnhanceInput{
		Prompt:       req.Prompt,
		Model:        req.Model,
		Enhancements: req.Enhancements,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	message := "Enhancing your prompt..."
	if !started {
		message = "Your prompt is already being enhanced."
	}
	c.JSON(http.StatusAccepted, utils.NewResponse(http.StatusAccepted, message, JobResponse{Job: job, Started: started}))
}

// SaveDraft godoc
// @Summary Save a prompt draft
// @Tags create-prompt
// @Accept json
// @Produce json
// @Param request body DraftRequest true "Draft"
// @Success 200 {object} utils.Response{data=models.Draft}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /create-prompt/drafts [post]
func (h *Handler) SaveDraft(c *gin.Context) {
	var req DraftRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	draft, err := h.workspace.SaveDraft(c.Request.Context(), services.DraftInput{Title: req.Title, Type: req.Type})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Prompt saved to drafts!", draft)
}

// Submit godoc
// @Summary Submit an enhanced prompt
// @Description Send the enhanced prompt to the library review queue
// @Tags create-prompt
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Enhanced prompt"
// @Success 200 {object} utils.Response{data=models.Submission}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /create-prompt/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sub, err := h.workspace.SubmitEnhanced(c.Request.Context(), services.EnhancedSubmissionInput{
		Title:          req.Title,
		Description:    req.Description,
		EnhancedPrompt: req.EnhancedPrompt,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Prompt submitted to library for review!", sub)
}
