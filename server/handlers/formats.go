package handlers

import (
	"context"
	"net/http"

	"vidfetch/ext"
	"vidfetch/ext/backend"
	"vidfetch/models"
	"vidfetch/util"

	"github.com/gin-gonic/gin"
)

type FormatsHandler struct {
	Inspect func(ctx context.Context, url string) (*models.MediaInfo, error)
}

func NewFormatsHandler() *FormatsHandler {
	return &FormatsHandler{Inspect: backend.Inspect}
}

func (h *FormatsHandler) Handle(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		respondError(c, "", util.ErrMissingURL)
		return
	}

	info, err := h.Inspect(c.Request.Context(), ext.Normalize(url))
	if err != nil {
		respondError(c, "", err)
		return
	}
	c.JSON(http.StatusOK, info)
}
