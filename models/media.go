package models

import "github.com/guregu/null/v6/zero"

// MediaInfo is the metadata-only view of a URL, served by the
// formats endpoint without downloading anything.
type MediaInfo struct {
	Title        string        `json:"title"`
	Uploader     string        `json:"uploader"`
	Duration     int64         `json:"duration"`
	WebpageURL   string        `json:"webpage_url"`
	VideoFormats []*FormatInfo `json:"video_formats"`
	AudioFormats []*FormatInfo `json:"audio_formats"`
}

type FormatInfo struct {
	FormatID   string   `json:"format_id"`
	Resolution string   `json:"resolution"`
	Ext        string   `json:"ext"`
	Note       string   `json:"note"`
	FileSize   zero.Int `json:"filesize"`
}
