package middleware

import "net/http"

// BodyLimit caps request bodies at n bytes. Reads past the limit fail, which
// the JSON handlers report as a bad request. It returns nil for n <= 0;
// Chain skips it then.
func BodyLimit(n int64) Middleware {
	if n <= 0 {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
