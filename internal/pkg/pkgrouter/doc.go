// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error mapping, correlation ID propagation, metrics,
// panic recovery, rate limiting, request body decompression and the request
// logger.
//
// The request logger (MiddlewareRequestLogger) attaches a pkglog logger to the
// request context and writes exactly one access line per request:
//
//	GET /health - 200 in 0.042 ms
package pkgrouter
