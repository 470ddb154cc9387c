// Package pkgroutine runs the service's long-lived background tasks, such as
// the HTTP listener, under a concurrency limit and reports their failures at
// shutdown.
package pkgroutine
