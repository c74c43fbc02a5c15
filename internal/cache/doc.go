// Package cache provides a generic thread-safe LRU cache with a soft
// entry limit.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// When the entry count exceeds softLimit, Set evicts the oldest 25% by
// access time. xfrm uses a Cache[string, resolvedChain] to memoize
// GetTransform's multi-hop path resolution, clearing it wholesale on
// every graph mutation.
package cache
