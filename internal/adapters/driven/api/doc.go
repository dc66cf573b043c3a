// Package api implements the driven.Backend port against the remote
// Docs Hub HTTP API.
//
// The client applies a proactive token-bucket throttle and a request
// timeout, and tags every request with an X-Request-ID header for log
// correlation. Response shapes are trusted as documented; there is no
// schema validation layer.
package api
