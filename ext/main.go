package ext

import (
	"vidfetch/ext/tiktok"
	"vidfetch/ext/youtube"
	"vidfetch/models"
)

var Rewriters = []*models.Rewriter{
	youtube.ShortsRewriter,
}

var Fallbacks = []*models.Fallback{
	tiktok.Fallback,
}

// Normalize rewrites known short-link URL shapes into the canonical
// form the extraction backend expects. Unrecognized input passes
// through unchanged and is left for the backend to reject.
func Normalize(url string) string {
	for _, rewriter := range Rewriters {
		groups := models.MatchGroups(rewriter.URLPattern, url)
		if groups == nil {
			continue
		}
		return rewriter.Rewrite(groups)
	}
	return url
}

// FallbackByURL returns the fallback resolver matching the URL host
// along with the extracted content id, or nil when no platform
// fallback exists for this URL.
func FallbackByURL(url string) (*models.Fallback, string) {
	for _, fallback := range Fallbacks {
		groups := models.MatchGroups(fallback.URLPattern, url)
		if groups == nil {
			continue
		}
		return fallback, groups["id"]
	}
	return nil, ""
}
