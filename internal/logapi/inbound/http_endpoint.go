package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgerror"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	loggers pkgrouter.LoggerFactory
	levels  levelStore
	parsers fastjson.ParserPool
}

var (
	errNotObject  = errors.New("entry is not an object")
	errEmptyBatch = errors.New("empty batch")
)

// SubmitLog writes the body's message through the request logger at the level
// named in the path. Unknown level names log at info. The body is either one
// {"message": ...} object or an array of them, logged in order.
//
// It answers 201 with no body, or 500 with the text of the first logging
// error.
func (h *HTTPEndpoint) SubmitLog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeText(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	messages, err := h.parseMessages(body)
	if err != nil {
		slog.DebugContext(r.Context(), "rejected log submission", "error", err)
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	logger, ok := pkglog.FromContext(r.Context())
	if !ok {
		if h.loggers == nil {
			writeText(w, http.StatusInternalServerError, "no logger available")
			return
		}
		logger = h.loggers.NewRequestLogger(r.Context())
	}

	level := pkgrouter.GetParam(r.Context(), "level")
	for _, msg := range messages {
		if err := dispatch(logger, level, msg); err != nil {
			writeText(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *HTTPEndpoint) parseMessages(body []byte) ([]string, error) {
	p := h.parsers.Get()
	defer h.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, err
	}

	if v.Type() != fastjson.TypeArray {
		msg, err := messageOf(v)
		if err != nil {
			return nil, err
		}
		return []string{msg}, nil
	}

	items, _ := v.Array()
	if len(items) == 0 {
		return nil, errEmptyBatch
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		msg, err := messageOf(item)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, msg)
	}
	return out, nil
}

// messageOf copies the message out of the parser's memory. A missing or null
// message is the empty string.
func messageOf(v *fastjson.Value) (string, error) {
	if v.Type() != fastjson.TypeObject {
		return "", errNotObject
	}

	m := v.Get("message")
	if m == nil || m.Type() == fastjson.TypeNull {
		return "", nil
	}

	b, err := m.StringBytes()
	if err != nil {
		return "", fmt.Errorf("message: %w", err)
	}
	return string(b), nil
}

func (h *HTTPEndpoint) GetLevel(_ context.Context, _ *http.Request) (any, error) {
	return newLevelResponse(h.levels.Level()), nil
}

func (h *HTTPEndpoint) SetLevel(ctx context.Context, r *http.Request) (any, error) {
	var req SetLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	previous := h.levels.Level()
	if err := h.levels.SetLevel(req.Level); err != nil {
		var gerr *pkgerror.Error
		if errors.As(err, &gerr) {
			return nil, err
		}
		return nil, pkgerror.NewServer(err)
	}

	current := h.levels.Level()
	slog.InfoContext(ctx, "log level changed", "from", previous.String(), "to", current.String())

	return newLevelResponse(current), nil
}

// dispatch calls the convenience method for level. A panic in the logger is
// returned as an error.
func dispatch(logger pkglog.LevelLogger, level, msg string) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			if e, ok := rvr.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", rvr)
		}
	}()

	switch strings.ToLower(level) {
	case pkglog.LevelDebug.String():
		return logger.Debug(msg)
	case pkglog.LevelInfo.String():
		return logger.Info(msg)
	case pkglog.LevelWarn.String():
		return logger.Warn(msg)
	case pkglog.LevelError.String():
		return logger.Error(msg)
	case pkglog.LevelFatal.String():
		return logger.Fatal(msg)
	default:
		return logger.Info(msg)
	}
}

func writeText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, msg)
}
