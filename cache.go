package mpf

import "sync"

// Default allocation cache limits.
const (
	DefaultCacheEntries = 100 // buffers retained
	DefaultCacheWords   = 128 // largest buffer retained, in words
)

// natCache is a bounded pool of mantissa buffers. It exists purely to
// avoid allocation churn for short-lived values: disabling it changes
// allocation counts, never results. It is safe for concurrent use.
type natCache struct {
	mu         sync.Mutex
	maxEntries int
	maxWords   int
	bufs       []nat
	hits       uint64
	misses     uint64
}

var cache = natCache{
	maxEntries: DefaultCacheEntries,
	maxWords:   DefaultCacheWords,
}

// natAcquire returns a nat of len n, reusing a cached buffer whose
// capacity is sufficient if one is available.
func natAcquire(n int) nat {
	cache.mu.Lock()
	for i, b := range cache.bufs {
		if cap(b) >= n {
			last := len(cache.bufs) - 1
			cache.bufs[i] = cache.bufs[last]
			cache.bufs[last] = nil
			cache.bufs = cache.bufs[:last]
			cache.hits++
			cache.mu.Unlock()
			return b[:n]
		}
	}
	cache.misses++
	cache.mu.Unlock()
	// Choosing a good extra capacity has significant performance impact
	// because it increases the chance that a buffer can be reused.
	const e = 4
	return make(nat, n, n+e)
}

// natRelease offers b's backing array to the cache. It is a no-op when
// the cache is disabled, full, or b exceeds the word ceiling.
func natRelease(b nat) {
	if cap(b) == 0 {
		return
	}
	cache.mu.Lock()
	if len(cache.bufs) < cache.maxEntries && cap(b) <= cache.maxWords {
		cache.bufs = append(cache.bufs, b[:0])
	}
	cache.mu.Unlock()
}

// SetCacheLimits reconfigures the allocation cache to retain at most
// maxEntries buffers of at most maxWords words each, evicting buffers
// exceeding the new limits immediately. maxEntries == 0 disables the
// cache entirely. Limits must not be negative.
func SetCacheLimits(maxEntries, maxWords int) error {
	if maxEntries < 0 || maxWords < 0 {
		return ErrInvalidConfiguration.New("negative cache limit (%d, %d)", maxEntries, maxWords)
	}
	cache.mu.Lock()
	cache.maxEntries = maxEntries
	cache.maxWords = maxWords
	kept := cache.bufs[:0]
	for _, b := range cache.bufs {
		if len(kept) < maxEntries && cap(b) <= maxWords {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(cache.bufs); i++ {
		cache.bufs[i] = nil
	}
	cache.bufs = kept
	cache.mu.Unlock()
	return nil
}

// CacheStats reports the current number of cached buffers and the
// cumulative hit and miss counts of buffer acquisition.
func CacheStats() (entries int, hits, misses uint64) {
	cache.mu.Lock()
	entries, hits, misses = len(cache.bufs), cache.hits, cache.misses
	cache.mu.Unlock()
	return
}
