package accesslog

import (
	"net/http"
	"time"
)

// Middleware records every request passing through next and hands it to w
// once the response is finished, whatever handler produced it.
func Middleware(w *Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rec := newResponseRecorder(rw)
			start := time.Now()

			defer func() {
				w.Log(r, ResponseInfo{
					Status:   rec.statusCode,
					Bytes:    rec.size,
					Header:   rec.Header(),
					Start:    start,
					Duration: time.Since(start),
				})
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
