// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (for example Viper). Code should depend on the Config interface so it stays
// easy to test and does not care where values come from (file, env, etc).
//
// Values are layered: defaults, then the config file, then environment
// variables. A change to the file on disk is reported through OnChange so
// settings such as the log level can be re-applied without a restart.
package pkgconfig
