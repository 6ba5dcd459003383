package av

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"vidfetch/config"
	"vidfetch/util"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// BlankRegion re-encodes the video blanking rect on every frame
// while copying the audio stream unchanged. A transcoder failure is
// fatal for the caller: serving the unmodified original instead
// would misrepresent success.
func BlankRegion(inputPath string, outputPath string, rect image.Rectangle) error {
	filter := fmt.Sprintf(
		"delogo=x=%d:y=%d:w=%d:h=%d:show=0",
		rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(),
	)
	err := ffmpeg.
		Input(inputPath).
		Output(outputPath, outputArgs(outputPath, ffmpeg.KwArgs{
			"vf":  filter,
			"c:a": "copy",
		})).
		Silent(true).
		OverWriteOutput().
		SetFfmpegPath(config.Env.FFmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrTranscodeFailed, err)
	}
	return nil
}

// StreamCopy remuxes the input into outputPath without re-encoding.
func StreamCopy(inputPath string, outputPath string) error {
	err := ffmpeg.
		Input(inputPath).
		Output(outputPath, outputArgs(outputPath, ffmpeg.KwArgs{
			"c": "copy",
		})).
		Silent(true).
		OverWriteOutput().
		SetFfmpegPath(config.Env.FFmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrTranscodeFailed, err)
	}
	return nil
}

// outputArgs adds the mp4-only faststart flag where it applies.
func outputArgs(outputPath string, args ffmpeg.KwArgs) ffmpeg.KwArgs {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".mp4", ".mov", ".m4a":
		args["movflags"] = "+faststart"
	}
	return args
}
