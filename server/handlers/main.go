package handlers

import (
	"errors"
	"net/http"

	"vidfetch/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "vidfetch is running"})
}

// respondError classifies a pipeline error, logs it with request
// context and answers with the structured error body. Raw
// collaborator errors never reach the client.
func respondError(c *gin.Context, workspaceID string, err error) {
	status := util.StatusFor(err)
	zap.S().Errorf(
		"request failed (url: %s, id: %s): %v",
		c.Query("url"), workspaceID, err,
	)
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": clientMessage(err),
	})
}

func clientMessage(err error) string {
	var typed *util.Error
	if errors.As(err, &typed) {
		return typed.Message
	}
	var fallback *util.FallbackError
	if errors.As(err, &fallback) {
		return fallback.Error()
	}
	return "internal server error"
}
