// Package ratelimit caps booking intents per client address inside a fixed
// time window. Two modes share one interface: a process-local counter map
// for single-instance deployments and a Redis-backed counter for anything
// running behind a load balancer.
package ratelimit

// Limiter reports whether a key may perform one more request right now.
type Limiter interface {
	Allow(key string) bool
}
