package tiktok

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"vidfetch/models"
	"vidfetch/util"

	"github.com/tidwall/gjson"
)

const apiBase = "https://www.tikwm.com"

var apiHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0",
	"Accept":     "application/json",
}

// Fallback resolves a direct playable URL through the tikwm API
// once the primary extraction backend has failed for a tiktok link.
var Fallback = &models.Fallback{
	Name:       "TikTok",
	CodeName:   "tiktok",
	URLPattern: regexp.MustCompile(`(?:https?:)?(?://)?(?:www\.)?tiktok\.com/@[\w.-]+/video/(?P<id>\d+)`),

	Resolve: resolveDirectURL,
}

func resolveDirectURL(ctx context.Context, contentID string) (string, error) {
	videoURL := fmt.Sprintf("https://www.tiktok.com/@_/video/%s", contentID)
	reqURL := fmt.Sprintf("%s/api/?url=%s&hd=1", apiBase, videoURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range apiHeaders {
		req.Header.Set(key, value)
	}

	resp, err := util.GetHTTPSession().Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("invalid response status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	data := gjson.ParseBytes(body)
	if data.Get("code").Int() != 0 {
		return "", fmt.Errorf("api error: %s", data.Get("msg").String())
	}
	playURL := data.Get("data.play").String()
	if playURL == "" {
		return "", fmt.Errorf("no playable url in api response")
	}
	if playURL[0] == '/' {
		playURL = apiBase + playURL
	}
	return playURL, nil
}
