// Package redisconn establishes the process-wide Redis client used by
// the rate limiter, with startup retry and a healthcheck closure.
package redisconn
