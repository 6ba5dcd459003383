package models

import (
	"fmt"

	"vidfetch/enums"
)

// DownloadRequest is the inbound request surface: one URL, an
// optional coarse kind and an optional explicit backend format id.
// Immutable once parsed.
type DownloadRequest struct {
	URL      string
	Kind     enums.MediaKind
	FormatID string
}

type DownloadOptions struct {
	TargetContainer string // merge container for video downloads
	QualityCeiling  int    // max vertical resolution, 0 = unbounded
	FormatSelector  string // explicit backend format id, overrides QualityCeiling
	AudioOnly       bool
	AudioFormat     string // target audio container when AudioOnly is set
	AudioBitrate    string // fixed target bitrate, e.g. "192K"
	OutputTemplate  string // must embed the request identifier
}

// Selector builds the backend format selection string.
func (opts *DownloadOptions) Selector() string {
	if opts.FormatSelector != "" {
		return opts.FormatSelector
	}
	if opts.AudioOnly {
		return "bestaudio/best"
	}
	if opts.QualityCeiling > 0 {
		return fmt.Sprintf(
			"bestvideo[height<=?%d]+bestaudio/best[height<=?%d]/best",
			opts.QualityCeiling, opts.QualityCeiling,
		)
	}
	return "bestvideo+bestaudio/best"
}

// ExtractionResult is the backend-reported metadata for one finished
// extraction plus the resolved local file path. Read-only after creation.
type ExtractionResult struct {
	Title      string
	Uploader   string
	Duration   int64
	WebpageURL string
	Ext        string
	FilePath   string
}
