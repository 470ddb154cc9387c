// Package pkgerror holds the structured error returned by handlers and by
// level validation. The router turns an *Error into a JSON body and an HTTP
// status using its Code.
package pkgerror
