package middleware

import "net/http"

type header struct{ key, value string }

var securityHeaders = []header{
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
}

// Responses carry the signed-in principal and are localized.
var noStoreHeaders = []header{
	{"Cache-Control", "no-store, max-age=0"},
	{"Pragma", "no-cache"},
	{"Vary", "Accept-Language"},
}

func SecureHeaders(next http.Handler) http.Handler { return withHeaders(next, securityHeaders) }

func NoStore(next http.Handler) http.Handler { return withHeaders(next, noStoreHeaders) }

func withHeaders(next http.Handler, hs []header) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, h := range hs {
			// Vary accumulates across middlewares.
			if h.key == "Vary" {
				w.Header().Add(h.key, h.value)
				continue
			}
			w.Header().Set(h.key, h.value)
		}
		next.ServeHTTP(w, r)
	})
}

// Chain applies mws so that the first one is outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
