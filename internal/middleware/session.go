package middleware

import (
	"net/http"
	"strings"

	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionKey    = "session_id"
	maxSessionLen = 128
)

// Session identifies the browser tab driving the request. Clients echo the
// id they were given so repeated triggers land on the same job key.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if len(id) > maxSessionLen {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Session id is too long"))
			c.Abort()
			return
		}
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(SessionHeader, id)
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
