package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/internal/apperr"
)

// respondError maps a service error onto its HTTP status. Internal
// failures are logged and replaced with a generic message so driver
// details never reach the caller.
func respondError(ctx *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		log.Printf("Internal error handling %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
