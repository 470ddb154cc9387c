package pkgrouter

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"
)

// timingWriter records the final status code and the moment response headers
// were committed.
type timingWriter struct {
	http.ResponseWriter
	status   int
	headerAt time.Time
	bytes    int
	hijacked bool
}

func newTimingWriter(w http.ResponseWriter) *timingWriter {
	return &timingWriter{ResponseWriter: w}
}

func (w *timingWriter) markHeader(code int) {
	if w.headerAt.IsZero() {
		w.status = code
		w.headerAt = time.Now()
	}
}

func (w *timingWriter) WriteHeader(code int) {
	// 1xx responses are interim; the final status comes later.
	if code >= http.StatusOK {
		w.markHeader(code)
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) Write(p []byte) (int, error) {
	w.markHeader(http.StatusOK)

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// headerSent reports whether a final status has been committed.
func (w *timingWriter) headerSent() bool {
	return !w.headerAt.IsZero()
}

func (w *timingWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		w.markHeader(http.StatusOK)
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *timingWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	conn, rw, err := h.Hijack()
	if err == nil {
		w.hijacked = true
	}
	return conn, rw, err
}

func (w *timingWriter) Push(target string, opts *http.PushOptions) error {
	if p, ok := w.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}
	return http.ErrNotSupported
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *timingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
