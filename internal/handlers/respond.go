// Package handlers contains HTTP request handlers for the trade journal service.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondError writes a structured JSON error body.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// LogAndRespondError logs the underlying error and writes a client-safe
// message. The cause never reaches the response body.
func LogAndRespondError(c *gin.Context, status int, err error, msg string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, msg)
}
