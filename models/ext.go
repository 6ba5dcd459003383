package models

import (
	"context"
	"regexp"
)

// Rewriter normalizes a known short-link URL shape into the canonical
// long form the extraction backend expects. Pure rewrite, no I/O.
type Rewriter struct {
	Name       string
	CodeName   string
	URLPattern *regexp.Regexp

	Rewrite func(groups map[string]string) string
}

// Fallback resolves a direct playable media URL through a platform
// API once the primary extraction backend has failed for that host.
type Fallback struct {
	Name       string
	CodeName   string
	URLPattern *regexp.Regexp

	Resolve func(ctx context.Context, contentID string) (string, error)
}

// MatchGroups runs pattern against url and returns the named
// capture groups plus the full match under "match".
func MatchGroups(pattern *regexp.Regexp, url string) map[string]string {
	matches := pattern.FindStringSubmatch(url)
	if matches == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range pattern.SubexpNames() {
		if name != "" {
			groups[name] = matches[i]
		}
	}
	groups["match"] = matches[0]
	return groups
}
