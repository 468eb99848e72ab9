// Package clientinfo extracts best-effort client metadata from HTTP
// requests for location annotation and mobile-flow routing.
package clientinfo

import (
	"net"
	"net/http"
	"strings"
)

var mobileMarkers = []string{"mobile", "android", "iphone", "ipad"}

// Info describes the client that made a request.
type Info struct {
	IPAddress string
	UserAgent string
	IsMobile  bool
}

// FromRequest builds an Info from request headers. Missing data degrades to
// "Unknown" rather than failing; annotation is informational only.
func FromRequest(r *http.Request) Info {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		ua = "Unknown"
	}

	return Info{
		IPAddress: remoteIP(r),
		UserAgent: ua,
		IsMobile:  IsMobileUserAgent(ua),
	}
}

// IsMobileUserAgent reports whether the user agent string looks like a
// mobile device.
func IsMobileUserAgent(ua string) bool {
	lower := strings.ToLower(ua)
	for _, marker := range mobileMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func remoteIP(r *http.Request) string {
	// X-Forwarded-For carries the original client when behind a proxy
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "Unknown"
	}
	return host
}
