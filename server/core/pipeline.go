package core

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"vidfetch/config"
	"vidfetch/enums"
	"vidfetch/ext"
	"vidfetch/ext/backend"
	"vidfetch/models"
	"vidfetch/util"
	"vidfetch/util/av"

	"go.uber.org/zap"
)

const (
	targetVideoContainer  = "mp4"
	targetAudioContainer  = "mp3"
	targetAudioBitrate    = "192K"
	defaultQualityCeiling = 1080
)

// Invoker abstracts the extraction backend so the pipeline can be
// exercised without a network transfer.
type Invoker interface {
	Download(ctx context.Context, url string, opts *models.DownloadOptions) (*models.ExtractionResult, error)
}

type backendInvoker struct{}

func (backendInvoker) Download(
	ctx context.Context,
	url string,
	opts *models.DownloadOptions,
) (*models.ExtractionResult, error) {
	return backend.Download(ctx, url, opts)
}

// Transcoder abstracts the ffmpeg surface the pipeline drives, so
// the logo-cleanup path can be exercised without real media.
type Transcoder interface {
	SampleFrame(videoPath string, framePath string) (image.Image, error)
	StreamCopy(inputPath string, outputPath string) error
	BlankRegion(inputPath string, outputPath string, region image.Rectangle) error
	Probe(path string) (*av.MediaProbe, error)
}

type avTranscoder struct{}

func (avTranscoder) SampleFrame(videoPath string, framePath string) (image.Image, error) {
	return av.DecodeFirstFrame(videoPath, framePath)
}

func (avTranscoder) StreamCopy(inputPath string, outputPath string) error {
	return av.StreamCopy(inputPath, outputPath)
}

func (avTranscoder) BlankRegion(inputPath string, outputPath string, region image.Rectangle) error {
	return av.BlankRegion(inputPath, outputPath, region)
}

func (avTranscoder) Probe(path string) (*av.MediaProbe, error) {
	return av.ProbeMedia(path)
}

type Pipeline struct {
	Invoker    Invoker
	Detector   av.Detector
	Transcoder Transcoder
	CleanLogo  bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		Invoker:    backendInvoker{},
		Detector:   av.NewBrightRegionDetector(),
		Transcoder: avTranscoder{},
		CleanLogo:  config.Env.CleanLogo,
	}
}

// Run executes the whole pipeline for one request on the request's
// goroutine: normalize, extract, locate, optionally post-process.
// The returned FilePath is the single final file to stream; the
// workspace owns its deletion.
func (p *Pipeline) Run(
	ctx context.Context,
	ws *Workspace,
	req *models.DownloadRequest,
) (*models.ExtractionResult, error) {
	url := ext.Normalize(req.URL)
	opts := p.optionsFor(ws, req)

	result, err := p.Invoker.Download(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	if result.FilePath == "" || !fileExists(result.FilePath) {
		path, err := ws.Locate(result.Ext)
		if err != nil {
			return nil, err
		}
		result.FilePath = path
	}

	if p.CleanLogo && req.Kind == enums.MediaKindVideo {
		cleaned, err := p.cleanLogo(ws, result)
		if err != nil {
			return nil, err
		}
		probe, err := p.transcoder().Probe(cleaned)
		if err != nil {
			return nil, fmt.Errorf("%w: validating output: %v", util.ErrTranscodeFailed, err)
		}
		if probe.Width <= 0 || probe.Height <= 0 {
			return nil, fmt.Errorf("%w: output has no video stream", util.ErrTranscodeFailed)
		}
		result.FilePath = cleaned
		if probe.Duration > 0 {
			result.Duration = probe.Duration
		}
	}

	if result.Duration == 0 {
		if probe, err := p.transcoder().Probe(result.FilePath); err == nil {
			result.Duration = probe.Duration
		}
	}
	return result, nil
}

func (p *Pipeline) optionsFor(ws *Workspace, req *models.DownloadRequest) *models.DownloadOptions {
	opts := &models.DownloadOptions{
		OutputTemplate: ws.OutputTemplate(),
		FormatSelector: req.FormatID,
	}
	if req.Kind == enums.MediaKindAudio {
		opts.AudioOnly = true
		opts.AudioFormat = targetAudioContainer
		opts.AudioBitrate = targetAudioBitrate
	} else {
		opts.TargetContainer = targetVideoContainer
		opts.QualityCeiling = defaultQualityCeiling
	}
	return opts
}

// cleanLogo samples the first frame, bounds the largest near-white
// region and blanks it across the whole video. Without a region the
// derived file is a plain stream copy. The original stays on disk
// until Release; only the derived file is streamed.
func (p *Pipeline) cleanLogo(ws *Workspace, result *models.ExtractionResult) (string, error) {
	frame, err := p.transcoder().SampleFrame(result.FilePath, ws.FramePath())
	if err != nil {
		return "", err
	}
	container := strings.TrimPrefix(filepath.Ext(result.FilePath), ".")
	if container == "" {
		container = result.Ext
	}
	output := ws.DerivedPath(container)

	region, found := p.Detector.Detect(frame)
	if found {
		region = av.ClampToFrame(region, frame.Bounds())
		found = !region.Empty()
	}
	if !found {
		zap.S().Debugf("workspace %s: no bright region, stream copying", ws.ID)
		if err := p.transcoder().StreamCopy(result.FilePath, output); err != nil {
			return "", err
		}
		return output, nil
	}

	zap.S().Infof("workspace %s: blanking region %v", ws.ID, region)
	if err := p.transcoder().BlankRegion(result.FilePath, output, region); err != nil {
		return "", err
	}
	return output, nil
}

func (p *Pipeline) transcoder() Transcoder {
	if p.Transcoder == nil {
		return avTranscoder{}
	}
	return p.Transcoder
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
