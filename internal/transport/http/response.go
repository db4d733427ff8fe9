package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondClientError writes the 400 payload the front-end expects.
func RespondClientError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// RespondServerError writes the 500 payload with a public message and the
// underlying detail string.
func RespondServerError(c *gin.Context, message, details string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":    message,
		"detalhes": details,
	})
}
