package pkgrouter

import (
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MiddlewareDecompress decodes gzip and zstd request bodies and caps the
// decoded body at maxBytes (no cap when maxBytes <= 0). Requests with any
// other Content-Encoding are rejected with 415.
func MiddlewareDecompress(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body io.ReadCloser

			switch strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding"))) {
			case "", "identity":
			case "gzip":
				zr, err := gzip.NewReader(r.Body)
				if err != nil {
					writeJSON(w, errorResponse{Message: "invalid gzip body"}, http.StatusBadRequest)
					return
				}
				defer zr.Close()
				body = zr
			case "zstd":
				zr, err := zstd.NewReader(r.Body)
				if err != nil {
					writeJSON(w, errorResponse{Message: "invalid zstd body"}, http.StatusBadRequest)
					return
				}
				defer zr.Close()
				body = io.NopCloser(zr)
			default:
				writeJSON(w, errorResponse{Message: "unsupported content encoding"}, http.StatusUnsupportedMediaType)
				return
			}

			if body != nil {
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			} else {
				body = r.Body
			}
			if maxBytes > 0 {
				body = http.MaxBytesReader(w, body, maxBytes)
			}
			r.Body = body

			next.ServeHTTP(w, r)
		})
	}
}
