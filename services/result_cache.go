// Copyright (c) 2026, LinguaKit Labs. (https://www.linguakit.dev).
//
// LinguaKit Labs licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package services

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a memoized provider result stays valid.
const DefaultCacheTTL = time.Hour

// resultCacheEntry holds one memoized operation result with its insertion time.
type resultCacheEntry struct {
	value      any
	insertedAt time.Time
}

// ResultCache is a process-wide, thread-safe store for results of operations
// that are pure functions of their inputs. Entries expire a fixed TTL after
// insertion (absolute, not sliding) and are purged lazily on lookup; there is
// no background sweep and no size bound. The cache is constructed once at
// startup and injected into the services that use it.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]resultCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewResultCache creates an empty cache with the given TTL. A non-positive
// ttl falls back to DefaultCacheTTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		entries: make(map[string]resultCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the fresh value stored under key. Expired entries are removed
// and reported as absent; they are never returned.
func (c *ResultCache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.insertedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed
		// the entry since the read.
		if current, ok := c.entries[key]; ok && c.now().Sub(current.insertedAt) >= c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.value, true
}

// Set stores value under key, unconditionally replacing any previous entry
// and restarting its TTL.
func (c *ResultCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = resultCacheEntry{
		value:      value,
		insertedAt: c.now(),
	}
}

// Invalidate removes a specific entry.
func (c *ResultCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	slog.Debug("result cache invalidated", "key", key)
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]resultCacheEntry)
	slog.Info("result cache cleared")
}

// Size returns the current number of entries, counting ones that have
// expired but not yet been purged by a lookup.
func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Cache keys are deterministic per operation: the operation prefix and the
// case-folded textual inputs joined with a fixed delimiter. Two requests
// differing only in letter case share one entry.

const cacheKeyDelimiter = ":"

func wordsCacheKey(topic, language string) string {
	return "words" + cacheKeyDelimiter + strings.ToLower(topic) + cacheKeyDelimiter + strings.ToLower(language)
}

func speechCacheKey(text, voice string) string {
	return "speech" + cacheKeyDelimiter + strings.ToLower(text) + cacheKeyDelimiter + strings.ToLower(voice)
}

func instructionsCacheKey(languageName string) string {
	return "instructions" + cacheKeyDelimiter + strings.ToLower(languageName)
}
