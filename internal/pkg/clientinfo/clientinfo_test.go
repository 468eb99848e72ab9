package clientinfo

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMobileUserAgent(t *testing.T) {
	mobile := []string{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
		"Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36",
		"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)",
	}
	for _, ua := range mobile {
		assert.True(t, IsMobileUserAgent(ua), ua)
	}

	desktop := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0",
		"Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0",
		"curl/8.4.0",
		"",
	}
	for _, ua := range desktop {
		assert.False(t, IsMobileUserAgent(ua), ua)
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/check-in", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (iPhone) Mobile")
	r.RemoteAddr = "192.0.2.10:51234"

	info := FromRequest(r)
	assert.Equal(t, "192.0.2.10", info.IPAddress)
	assert.True(t, info.IsMobile)
	assert.Equal(t, "Mozilla/5.0 (iPhone) Mobile", info.UserAgent)
}

func TestFromRequest_ForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/check-in", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	info := FromRequest(r)
	assert.Equal(t, "203.0.113.7", info.IPAddress)
	assert.False(t, info.IsMobile)
	assert.Equal(t, "Unknown", info.UserAgent)
}
