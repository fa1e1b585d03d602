package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
)

// ResultCache is an in-memory cache of pipeline results keyed by input
// identity, for presentation layers that re-run the pipeline on every
// interaction. It is an optimization, not a correctness requirement; entries
// are lost on restart. Safe for concurrent use.
//
// Cached results are shared, not copied: callers must treat a returned
// ProcessResult as read-only.
type ResultCache struct {
	mu      sync.RWMutex
	results map[string]*ProcessResult
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{results: make(map[string]*ProcessResult)}
}

// CacheKey derives the identity of an input: a checksum of the raw bytes plus
// the declared format. The same bytes declared as a different format are a
// different input.
func CacheKey(raw []byte, format Format) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(raw)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for a key, if any.
func (c *ResultCache) Get(key string) (*ProcessResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.results[key]
	return result, ok
}

// Put stores a result under a key, replacing any previous entry.
func (c *ResultCache) Put(key string, result *ProcessResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[key] = result
}

// Process runs the pipeline for the raw input, reusing a cached result when
// the same bytes and format were processed before.
func (c *ResultCache) Process(ctx context.Context, raw []byte, format Format, cfg config.Config) (*ProcessResult, error) {
	key := CacheKey(raw, format)
	if result, ok := c.Get(key); ok {
		return result, nil
	}

	state := &State{Raw: raw, Format: format}
	if err := NewProcessingPipeline(cfg).Execute(ctx, state); err != nil {
		return nil, err
	}
	result := &ProcessResult{
		RunID:      key[:8],
		Data:       state.Data,
		Duplicates: state.Duplicates,
		Issues:     state.Issues,
		Summary:    state.Summary,
	}
	c.Put(key, result)
	return result, nil
}
