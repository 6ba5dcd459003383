package handlers

import (
	"context"
	"errors"
	"net/http"

	"vidfetch/config"
	"vidfetch/enums"
	"vidfetch/ext"
	"vidfetch/models"
	"vidfetch/server/core"
	"vidfetch/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	mediaTypeVideo = "video/mp4"
	mediaTypeAudio = "audio/mpeg"
)

type DownloadHandler struct {
	Pipeline *core.Pipeline
}

func NewDownloadHandler() *DownloadHandler {
	return &DownloadHandler{Pipeline: core.NewPipeline()}
}

func (h *DownloadHandler) Handle(c *gin.Context) {
	req, err := parseDownloadRequest(c)
	if err != nil {
		respondError(c, "", err)
		return
	}

	ws := core.NewWorkspace(config.Env.DownloadsDirectory)
	// deleting the working files is tied to the handler exit, after
	// the response body has been fully written
	defer ws.Release()

	// a client disconnect must not abort an in-flight extraction;
	// the pipeline runs to completion and cleanup still fires
	result, err := h.Pipeline.Run(context.Background(), ws, req)
	if err != nil {
		if errors.Is(err, util.ErrExtractionFailed) && h.redirectFallback(c, ws, req, err) {
			return
		}
		respondError(c, ws.ID, err)
		return
	}

	fileName := util.SanitizeFileName(result.Title)
	mediaType := mediaTypeVideo
	outExt := ".mp4"
	if req.Kind == enums.MediaKindAudio {
		mediaType = mediaTypeAudio
		outExt = ".mp3"
	}

	zap.S().Infof("serving %s (%s) for %s", result.FilePath, mediaType, req.URL)
	c.Header("Content-Type", mediaType)
	c.FileAttachment(result.FilePath, fileName+outExt)
}

// redirectFallback tries the platform fallback after a primary
// extraction failure. It reports whether it wrote a response.
func (h *DownloadHandler) redirectFallback(
	c *gin.Context,
	ws *core.Workspace,
	req *models.DownloadRequest,
	primary error,
) bool {
	fallback, contentID := ext.FallbackByURL(req.URL)
	if fallback == nil {
		return false
	}

	zap.S().Infof("trying %s fallback for %s", fallback.Name, req.URL)
	directURL, err := fallback.Resolve(c.Request.Context(), contentID)
	if err != nil {
		respondError(c, ws.ID, &util.FallbackError{Primary: primary, Fallback: err})
		return true
	}
	c.Redirect(http.StatusFound, directURL)
	return true
}

func parseDownloadRequest(c *gin.Context) (*models.DownloadRequest, error) {
	url := c.Query("url")
	if url == "" {
		return nil, util.ErrMissingURL
	}

	kind := enums.MediaKindVideo
	if value := c.Query("format"); value != "" {
		parsed, ok := enums.ParseMediaKind(value)
		if !ok {
			return nil, util.ErrInvalidFormat
		}
		kind = parsed
	}

	return &models.DownloadRequest{
		URL:      url,
		Kind:     kind,
		FormatID: c.Query("format_id"),
	}, nil
}
