package common

import (
	"errors"
	"mime"
	"net/http"

	"promptshq/internal/database"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

// ToastHeader carries the toast text on responses that are not JSON.
const ToastHeader = "X-Toast-Message"

// NotFoundData points the client back to a page it can recover on.
type NotFoundData struct {
	Back string `json:"back"`
}

// RespondError maps service errors onto the envelope. Validation errors
// are shown to the user as is. Anything unexpected is logged through the
// request context and reported as a generic 500.
func RespondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.Fail(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, database.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, utils.NewResponse(http.StatusNotFound, "Content not found", NotFoundData{Back: "/library"}))
	case errors.Is(err, services.ErrJobNotFound):
		utils.Fail(c, http.StatusNotFound, "Job not found")
	case errors.Is(err, services.ErrRunnerClosed):
		utils.Fail(c, http.StatusServiceUnavailable, "The server is shutting down. Please try again.")
	default:
		_ = c.Error(err)
		utils.Fail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

// Attachment writes body as a download with the toast in ToastHeader.
func Attachment(c *gin.Context, filename, contentType, toast string, body []byte) {
	c.Header(ToastHeader, toast)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, contentType, body)
}

// PlainText writes body for the browser to put on the clipboard.
func PlainText(c *gin.Context, toast, body string) {
	c.Header(ToastHeader, toast)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
