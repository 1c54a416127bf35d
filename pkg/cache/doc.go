// Package cache provides a small, thread-safe in-process cache with a
// time-to-live policy and an injectable clock.
//
// The cache is deliberately an explicit object that callers pass to the
// components needing lookups, never process-wide hidden state, so it can
// be swapped for a fake in tests. Expired entries are dropped lazily on
// read and during Set sweeps; there is no background goroutine to manage.
package cache
