package av

import (
	"fmt"

	"vidfetch/util"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// MediaProbe is the slice of container metadata the service reads.
type MediaProbe struct {
	Duration int64
	Width    int64
	Height   int64
}

// ProbeMedia reads the container duration and the dimensions of the
// first stream. Audio-only files report zero dimensions.
func ProbeMedia(path string) (*MediaProbe, error) {
	data, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("%w: probe: %v", util.ErrUnprocessableMedia, err)
	}
	return &MediaProbe{
		Duration: int64(gjson.Get(data, "format.duration").Float()),
		Width:    gjson.Get(data, "streams.0.width").Int(),
		Height:   gjson.Get(data, "streams.0.height").Int(),
	}, nil
}
