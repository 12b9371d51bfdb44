// Package ratelimit provides a fixed-window request limiter over a
// pluggable Store, with in-memory and Redis backends and net/http
// middleware for the public endpoints.
//
// The middleware fails open: a storage error never blocks traffic,
// because an unavailable Redis must not take signup down with it.
package ratelimit
