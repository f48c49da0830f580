package router

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers consulted for the original client address, most specific first.
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// middlewareIP rewrites RemoteAddr to the client address reported by the
// proxy chain, so request logs show the caller rather than the load balancer.
func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := clientIP(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	var candidate string
	for _, h := range clientIPHeaders {
		if v := r.Header.Get(h); v != "" {
			// X-Forwarded-For holds a hop chain; the first entry is the client.
			candidate, _, _ = strings.Cut(v, ",")
			candidate = strings.TrimSpace(candidate)
			break
		}
	}
	if candidate != "" && net.ParseIP(candidate) != nil {
		return candidate
	}

	// No usable proxy header; trust the socket address.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	return ""
}
