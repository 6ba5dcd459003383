package av

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Detector bounds a region of interest in a single frame. It exists
// as an interface so the detection strategy can be swapped without
// touching the download pipeline.
type Detector interface {
	Detect(frame image.Image) (image.Rectangle, bool)
}

// BrightRegionDetector isolates near-white pixels and bounds the
// largest contiguous blob. It is a heuristic proxy for
// semi-transparent logo overlays and will misfire on legitimately
// bright content; callers accept that tradeoff.
type BrightRegionDetector struct {
	Threshold uint8 // luminance cutoff, 0-255
	MinArea   int   // blobs smaller than this are noise
}

func NewBrightRegionDetector() *BrightRegionDetector {
	return &BrightRegionDetector{
		Threshold: 245,
		MinArea:   16,
	}
}

func (detector *BrightRegionDetector) Detect(frame image.Image) (image.Rectangle, bool) {
	bounds := frame.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return image.Rectangle{}, false
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.Copy(gray, image.Point{}, frame, bounds, xdraw.Src, nil)

	mask := make([]bool, width*height)
	for i, pixel := range gray.Pix {
		mask[i] = pixel >= detector.Threshold
	}

	best := image.Rectangle{}
	bestArea := 0
	visited := make([]bool, width*height)
	stack := make([]int, 0, 256)

	for start := range mask {
		if !mask[start] || visited[start] {
			continue
		}

		// flood fill one 4-connected component, tracking its
		// pixel count and bounding box
		area := 0
		minX, minY := width, height
		maxX, maxY := 0, 0
		visited[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x := idx % width
			y := idx / width

			area++
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)

			for _, next := range neighbors(idx, x, y, width, height) {
				if mask[next] && !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}

		if area > bestArea {
			bestArea = area
			best = image.Rect(minX, minY, maxX+1, maxY+1)
		}
	}

	if bestArea < detector.MinArea {
		return image.Rectangle{}, false
	}
	return best, true
}

func neighbors(idx, x, y, width, height int) []int {
	result := make([]int, 0, 4)
	if x > 0 {
		result = append(result, idx-1)
	}
	if x < width-1 {
		result = append(result, idx+1)
	}
	if y > 0 {
		result = append(result, idx-width)
	}
	if y < height-1 {
		result = append(result, idx+width)
	}
	return result
}

// ClampToFrame shrinks rect so it sits strictly inside the frame
// with a one pixel border, which the blanking filter requires.
func ClampToFrame(rect image.Rectangle, frame image.Rectangle) image.Rectangle {
	inner := frame.Inset(1)
	clamped := rect.Intersect(inner)
	if clamped.Empty() {
		return image.Rectangle{}
	}
	return clamped
}
