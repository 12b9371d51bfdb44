package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc extracts the rate-limit key from an HTTP request.
type KeyFunc func(*http.Request) string

// ByClientIP keys requests by the originating client IP, honoring the
// usual proxy headers before falling back to the socket address.
func ByClientIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := r.Header.Get("X-Real-IP"); ip != "" {
			return strings.TrimSpace(ip)
		}
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			// First address is the original client.
			ip, _, _ := strings.Cut(fwd, ",")
			return strings.TrimSpace(ip)
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
}
