package backend

import (
	"context"
	"fmt"
	"strings"

	"vidfetch/config"
	"vidfetch/models"
	"vidfetch/util"

	"github.com/bytedance/sonic"
	"github.com/guregu/null/v6/zero"
	"github.com/lrstanley/go-ytdlp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// audio containers the backend may declare before its own
// post-processing transcodes them to the requested audio format
var audioContainerRemap = map[string]bool{
	"webm": true,
	"m4a":  true,
	"opus": true,
	"oga":  true,
	"aac":  true,
	"wav":  true,
}

// newCommand starts a backend invocation honoring the configured
// binary locations.
func newCommand() *ytdlp.Command {
	dl := ytdlp.New().
		NoPlaylist().
		NoWarnings().
		FFmpegLocation(config.Env.FFmpegPath)
	if config.Env.YTDLPPath != "" {
		dl = dl.SetExecutable(config.Env.YTDLPPath)
	}
	return dl
}

// Download drives the backend synchronously: the call blocks for the
// whole network transfer. The backend writes into the downloads
// directory even on partial failure; cleanup tolerates those
// artifacts.
func Download(
	ctx context.Context,
	url string,
	opts *models.DownloadOptions,
) (*models.ExtractionResult, error) {
	dl := newCommand().
		PrintJSON().
		Format(opts.Selector()).
		Output(opts.OutputTemplate)

	if opts.AudioOnly {
		dl = dl.
			ExtractAudio().
			AudioFormat(opts.AudioFormat).
			AudioQuality(opts.AudioBitrate)
	} else if opts.TargetContainer != "" {
		dl = dl.MergeOutputFormat(opts.TargetContainer)
	}
	if proxy := config.Env.ProxyFor(url); proxy != "" {
		dl = dl.Proxy(proxy)
	}

	zap.S().Debugf("invoking backend: %s (selector: %s)", url, opts.Selector())
	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrExtractionFailed, err)
	}

	info, err := parseInfo(result.Stdout)
	if err != nil {
		return nil, err
	}

	extraction := &models.ExtractionResult{
		Title:      info.Title,
		Uploader:   uploaderOf(info),
		Duration:   int64(info.Duration),
		WebpageURL: info.WebpageURL,
		Ext:        info.Ext,
		FilePath:   producedPath(result.Stdout, info),
	}
	if opts.AudioOnly && audioContainerRemap[extraction.Ext] {
		extraction.Ext = opts.AudioFormat
	}
	return extraction, nil
}

// Inspect fetches metadata without downloading.
func Inspect(ctx context.Context, url string) (*models.MediaInfo, error) {
	dl := newCommand().
		SkipDownload().
		DumpSingleJSON()

	if proxy := config.Env.ProxyFor(url); proxy != "" {
		dl = dl.Proxy(proxy)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrExtractionFailed, err)
	}

	info, err := parseInfo(result.Stdout)
	if err != nil {
		return nil, err
	}
	return buildMediaInfo(info), nil
}

// parseInfo decodes the single info dict the backend prints on
// stdout. Progress noise around the JSON line is skipped.
func parseInfo(stdout string) (*infoJSON, error) {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var info infoJSON
		if err := sonic.ConfigFastest.UnmarshalFromString(line, &info); err != nil {
			return nil, fmt.Errorf("%w: malformed info dict: %v", util.ErrExtractionFailed, err)
		}
		return &info, nil
	}
	return nil, fmt.Errorf("%w: backend produced no info dict", util.ErrExtractionFailed)
}

// producedPath resolves the authoritative output path the backend
// reports after its own post-processing has moved the file. Empty
// when the backend did not report one; the caller then falls back
// to the prefix scan.
func producedPath(stdout string, info *infoJSON) string {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		if path := gjson.Get(line, "requested_downloads.0.filepath").String(); path != "" {
			return path
		}
		break
	}
	return info.Filename
}

func uploaderOf(info *infoJSON) string {
	if info.Uploader != "" {
		return info.Uploader
	}
	return info.Channel
}

func buildMediaInfo(info *infoJSON) *models.MediaInfo {
	media := &models.MediaInfo{
		Title:        info.Title,
		Uploader:     uploaderOf(info),
		Duration:     int64(info.Duration),
		WebpageURL:   info.WebpageURL,
		VideoFormats: make([]*models.FormatInfo, 0),
		AudioFormats: make([]*models.FormatInfo, 0),
	}
	for _, format := range info.Formats {
		descriptor := &models.FormatInfo{
			FormatID:   format.FormatID,
			Resolution: format.resolutionLabel(),
			Ext:        format.Ext,
			Note:       format.FormatNote,
		}
		if format.Filesize != nil {
			descriptor.FileSize = zero.IntFrom(*format.Filesize)
		}
		switch {
		case format.hasVideo():
			media.VideoFormats = append(media.VideoFormats, descriptor)
		case format.hasAudio():
			media.AudioFormats = append(media.AudioFormats, descriptor)
		}
	}
	return media
}
