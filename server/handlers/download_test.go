package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"vidfetch/config"
	"vidfetch/models"
	"vidfetch/server/core"
	"vidfetch/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoker struct {
	calls int
	opts  *models.DownloadOptions
	err   error
	ext   string
	title string
}

func (s *stubInvoker) Download(
	_ context.Context,
	_ string,
	opts *models.DownloadOptions,
) (*models.ExtractionResult, error) {
	s.calls++
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}
	path := strings.Replace(opts.OutputTemplate, "%(ext)s", s.ext, 1)
	if err := os.WriteFile(path, []byte("media bytes"), 0o644); err != nil {
		return nil, err
	}
	return &models.ExtractionResult{
		Title:    s.title,
		Uploader: "someone",
		Duration: 180,
		Ext:      s.ext,
		FilePath: path,
	}, nil
}

func newTestRouter(t *testing.T, invoker core.Invoker) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	config.Env.DownloadsDirectory = dir

	handler := &DownloadHandler{
		Pipeline: &core.Pipeline{Invoker: invoker},
	}
	router := gin.New()
	router.GET("/download", handler.Handle)
	return router, dir
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestDownloadMissingURL(t *testing.T) {
	router, _ := newTestRouter(t, &stubInvoker{ext: "mp4", title: "x"})

	w := get(router, "/download")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "url parameter is required")
}

func TestDownloadInvalidFormat(t *testing.T) {
	router, _ := newTestRouter(t, &stubInvoker{ext: "mp4", title: "x"})

	w := get(router, "/download?url=https://example.com/v/1&format=wav")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "format must be either video or audio")
}

func TestDownloadVideoSuccess(t *testing.T) {
	invoker := &stubInvoker{ext: "mp4", title: "My/Video:Title*!"}
	router, dir := newTestRouter(t, invoker)

	w := get(router, "/download?url=https://example.com/v/1")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "video/mp4", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "MyVideoTitle.mp4")
	assert.Equal(t, "media bytes", w.Body.String())

	// the working file is gone once the response has completed
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownloadAudioScenario(t *testing.T) {
	invoker := &stubInvoker{ext: "mp3", title: "A Three Minute Talk"}
	router, _ := newTestRouter(t, invoker)

	w := get(router, "/download?url=https://example.com/v/1&format=audio")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "A Three Minute Talk.mp3")

	// fixed audio-extraction configuration
	require.NotNil(t, invoker.opts)
	assert.True(t, invoker.opts.AudioOnly)
	assert.Equal(t, "mp3", invoker.opts.AudioFormat)
	assert.Equal(t, "192K", invoker.opts.AudioBitrate)
}

func TestDownloadExtractionFailureNoFallback(t *testing.T) {
	invoker := &stubInvoker{err: fmt.Errorf("%w: private video", util.ErrExtractionFailed)}
	router, _ := newTestRouter(t, invoker)

	// not a fallback-platform URL: the failure surfaces directly
	w := get(router, "/download?url=https://example.com/v/1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "extraction backend could not fetch this url")
	assert.Equal(t, 1, invoker.calls)
}

func TestDownloadServerFaultStatus(t *testing.T) {
	invoker := &stubInvoker{err: fmt.Errorf("%w: boom", util.ErrTranscodeFailed)}
	router, _ := newTestRouter(t, invoker)

	w := get(router, "/download?url=https://example.com/v/1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "video post-processing failed")
}

func TestDownloadCleansUpOnFailure(t *testing.T) {
	invoker := &partialArtifactInvoker{}
	router, dir := newTestRouter(t, invoker)

	w := get(router, "/download?url=https://example.com/v/1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// partial artifacts from the failed transfer are removed too
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// partialArtifactInvoker writes a partial file and then fails, the
// way an interrupted transfer does.
type partialArtifactInvoker struct{}

func (partialArtifactInvoker) Download(
	_ context.Context,
	_ string,
	opts *models.DownloadOptions,
) (*models.ExtractionResult, error) {
	path := strings.Replace(opts.OutputTemplate, "%(ext)s", "mp4.part", 1)
	if err := os.WriteFile(path, []byte("partial"), 0o644); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: connection reset", util.ErrOutputMissing)
}
