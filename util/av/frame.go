package av

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"vidfetch/config"
	"vidfetch/util"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DecodeFirstFrame decodes exactly the first frame of a video into
// an in-memory image, using framePath as scratch for the extracted
// frame. An empty or corrupt input fails the decode.
func DecodeFirstFrame(videoPath string, framePath string) (image.Image, error) {
	err := ffmpeg.
		Input(videoPath).
		Output(framePath, ffmpeg.KwArgs{
			"vframes": 1,
			"f":       "image2",
			"c:v":     "png",
		}).
		Silent(true).
		OverWriteOutput().
		SetFfmpegPath(config.Env.FFmpegPath).
		Run()
	if err != nil {
		return nil, fmt.Errorf("%w: frame extraction: %v", util.ErrUnprocessableMedia, err)
	}

	file, err := os.Open(framePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnprocessableMedia, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: frame decode: %v", util.ErrUnprocessableMedia, err)
	}
	return img, nil
}
