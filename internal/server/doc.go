// Package server runs the version-gen preview server.
//
// It binds the configured HTTP address, serves the chi router built by
// internal/handler/http and shuts down gracefully on SIGINT, SIGTERM or
// SIGQUIT, or when the caller's context is cancelled.
package server
