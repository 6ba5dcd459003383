package backend

import "strconv"

// infoJSON is the subset of the backend's info dict this service
// consumes. Everything else in the dict is ignored.
type infoJSON struct {
	Title      string        `json:"title"`
	Uploader   string        `json:"uploader"`
	Channel    string        `json:"channel"`
	Duration   float64       `json:"duration"`
	WebpageURL string        `json:"webpage_url"`
	Ext        string        `json:"ext"`
	Filename   string        `json:"_filename"`
	Formats    []*formatJSON `json:"formats"`
}

type formatJSON struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	FormatNote string  `json:"format_note"`
	Filesize   *int64  `json:"filesize"`
	Vcodec     string  `json:"vcodec"`
	Acodec     string  `json:"acodec"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Abr        float64 `json:"abr"`
}

func (format *formatJSON) hasVideo() bool {
	return format.Vcodec != "" && format.Vcodec != "none"
}

func (format *formatJSON) hasAudio() bool {
	return format.Acodec != "" && format.Acodec != "none"
}

func (format *formatJSON) resolutionLabel() string {
	if format.Resolution != "" && format.Resolution != "audio only" {
		return format.Resolution
	}
	if format.Width > 0 && format.Height > 0 {
		return strconv.Itoa(format.Width) + "x" + strconv.Itoa(format.Height)
	}
	return "unknown"
}
