// Package http implements the dev preview server of version-gen.
//
// It exposes the generation pipeline over a small REST API (current record,
// forced regeneration, cache status and reset) and serves every artifact
// format at /version.<ext>, rendered from the same record the generator
// writes to disk. Request tracing, access logging, panic recovery and
// response compression are handled in this package before requests reach
// the service layer.
package http
