package models

import (
	"net/url"
	"strings"
	"time"
)

type EnvConfig struct {
	Port int

	DownloadsDirectory string

	// logo cleanup post-processing for downloaded videos
	CleanLogo bool

	YTDLPPath  string
	FFmpegPath string

	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string

	CleanupMaxAge   time.Duration
	CleanupInterval time.Duration

	ProfilerPort int
	LogLevel     string
	LogFile      bool
}

// ProxyFor picks the proxy to hand the extraction backend for
// rawURL: HTTPSProxy for https targets when set, HTTPProxy
// otherwise, and none at all for hosts matched by NoProxy.
func (c *EnvConfig) ProxyFor(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return c.HTTPProxy
	}
	host := parsed.Hostname()
	for _, skip := range strings.Split(c.NoProxy, ",") {
		skip = strings.TrimSpace(skip)
		if skip == "" {
			continue
		}
		if skip == "*" || host == skip || strings.HasSuffix(host, "."+strings.TrimPrefix(skip, ".")) {
			return ""
		}
	}
	if parsed.Scheme == "https" && c.HTTPSProxy != "" {
		return c.HTTPSProxy
	}
	return c.HTTPProxy
}
