// Package pkguid provides helpers for generating unique identifiers.
//
// The server uses them to mint correlation IDs for requests that arrive
// without one:
//   - UUID v7 strings (default).
//   - Snowflake IDs rendered as decimal strings.
package pkguid
