package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProxyForSchemeSplit(t *testing.T) {
	cfg := &EnvConfig{
		HTTPProxy:  "http://proxy:3128",
		HTTPSProxy: "http://sproxy:3129",
	}

	assert.Equal(t, "http://sproxy:3129", cfg.ProxyFor("https://youtube.com/watch?v=x"))
	assert.Equal(t, "http://proxy:3128", cfg.ProxyFor("http://youtube.com/watch?v=x"))
}

func TestProxyForFallsBackToHTTPProxy(t *testing.T) {
	cfg := &EnvConfig{HTTPProxy: "http://proxy:3128"}
	assert.Equal(t, "http://proxy:3128", cfg.ProxyFor("https://youtube.com/watch?v=x"))
}

func TestProxyForNoProxyList(t *testing.T) {
	cfg := &EnvConfig{
		HTTPProxy: "http://proxy:3128",
		NoProxy:   "localhost, .internal.example",
	}

	assert.Empty(t, cfg.ProxyFor("http://localhost:8080/clip"))
	assert.Empty(t, cfg.ProxyFor("https://media.internal.example/clip"))
	assert.Equal(t, "http://proxy:3128", cfg.ProxyFor("https://youtube.com/watch?v=x"))
}

func TestProxyForWildcard(t *testing.T) {
	cfg := &EnvConfig{HTTPProxy: "http://proxy:3128", NoProxy: "*"}
	assert.Empty(t, cfg.ProxyFor("https://youtube.com/watch?v=x"))
}

func TestProxyForUnset(t *testing.T) {
	cfg := &EnvConfig{}
	assert.Empty(t, cfg.ProxyFor("https://youtube.com/watch?v=x"))
}
