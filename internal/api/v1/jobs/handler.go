package jobs

import (
	"promptshq/internal/api/v1/common"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	generation *services.GenerationService
}

func NewHandler(generation *services.GenerationService) *Handler {
	return &Handler{generation: generation}
}

// statusMessage is the toast for a polled job.
func statusMessage(job services.Job) string {
	switch job.Status {
	case services.JobStatusPending:
		return "Still working..."
	case services.JobStatusComplete:
		switch job.Kind {
		case services.JobKindEnhance:
			return "Prompt enhanced successfully!"
		case services.JobKindDiagram:
			return "Mermaid diagram generated successfully!"
		}
		return "Done!"
	case services.JobStatusFailed:
		return job.Error
	case services.JobStatusCancelled:
		return "Cancelled."
	}
	return string(job.Status)
}

// GetJob godoc
// @Summary Poll a generation job
// @Description Polled by the page until the job leaves pending
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} utils.Response{data=services.Job}
// @Failure 404 {object} utils.Response
// @Router /jobs/{id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.generation.Job(c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, statusMessage(job), job)
}

// CancelJob godoc
// @Summary Cancel a generation job
// @Description Sent when the page is left before the job finishes. A cancelled job never takes a late result
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} utils.Response{data=services.Job}
// @Failure 404 {object} utils.Response
// @Router /jobs/{id} [delete]
func (h *Handler) CancelJob(c *gin.Context) {
	job, err := h.generation.CancelJob(c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, statusMessage(job), job)
}
