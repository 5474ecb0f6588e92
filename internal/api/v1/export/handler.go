package export

import (
	"net/http"
	"strings"

	"promptshq/internal/api/v1/common"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func downloadToast(format services.ExportFormat) string {
	if format == services.ExportMermaid {
		return "Mermaid code downloaded!"
	}
	return "Download started!"
}

// Download godoc
// @Summary Download generated text
// @Description Turn generated text into a file. The toast travels in the X-Toast-Message header
// @Tags export
// @Accept json
// @Produce plain
// @Param request body ExportRequest true "Export request"
// @Success 200 {string} string "File body"
// @Failure 400 {object} utils.Response
// @Router /export [post]
func (h *Handler) Download(c *gin.Context) {
	var req ExportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	file, err := services.Export(req.Title, req.Content, req.Format)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.Attachment(c, file.Filename, file.ContentType, downloadToast(req.Format), file.Body)
}

// Clipboard godoc
// @Summary Copy generated text
// @Description Echo generated text back as plain text for the clipboard
// @Tags export
// @Accept json
// @Produce plain
// @Param request body ClipboardRequest true "Clipboard request"
// @Success 200 {string} string "Clipboard text"
// @Failure 400 {object} utils.Response
// @Router /export/clipboard [post]
func (h *Handler) Clipboard(c *gin.Context) {
	var req ClipboardRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		utils.Fail(c, http.StatusBadRequest, "There is nothing to copy yet.")
		return
	}
	common.PlainText(c, "Copied to clipboard!", req.Content)
}
