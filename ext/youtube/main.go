package youtube

import (
	"fmt"
	"regexp"

	"vidfetch/models"
)

// ShortsRewriter maps youtube.com/shorts/<id> links onto the watch
// page URL shape. Only the video token survives the rewrite; query
// parameters on the shorts link are dropped.
var ShortsRewriter = &models.Rewriter{
	Name:       "YouTube Shorts",
	CodeName:   "youtube-shorts",
	URLPattern: regexp.MustCompile(`(?:https?:)?(?://)?(?:(?:www|m)\.)?youtube\.com/shorts/(?P<id>[\w-]{11})(?:[?&].*)?`),

	Rewrite: func(groups map[string]string) string {
		return fmt.Sprintf("https://www.youtube.com/watch?v=%s", groups["id"])
	},
}
