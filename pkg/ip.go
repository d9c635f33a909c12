package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// client ip headers, in the order they are trusted
var clientIPHeaders = []string{"X-Real-Ip", "X-Forwarded-For"}

// ReadUserIP returns the client address used to key per-client limits.
// Loopback callers are reported as "localhost".
func ReadUserIP(r *http.Request) (string, error) {
	raw := r.RemoteAddr
	for _, h := range clientIPHeaders {
		if v := r.Header.Get(h); v != "" {
			raw = v
			break
		}
	}

	// first hop of a proxy chain is the client
	if first, _, found := strings.Cut(raw, ","); found {
		raw = first
	}
	raw = strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}

	ip := net.ParseIP(raw)
	if ip == nil {
		return "", fmt.Errorf("client ip %q is invalid", raw)
	}
	if ip.IsLoopback() {
		return "localhost", nil
	}
	return ip.String(), nil
}
