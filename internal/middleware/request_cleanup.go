package middleware

import (
	"io"
	"net/http"
)

// max bytes read from an unconsumed body before closing it; the rest is dropped with the connection
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains whatever the handler left in the request body, then closes it,
// so keep-alive connections can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
