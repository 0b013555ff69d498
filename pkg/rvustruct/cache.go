package rvustruct

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
	"golang.org/x/sync/singleflight"
)

// LoadObserver is notified after every extraction the Loader performs.
type LoadObserver func(path string, elapsed time.Duration, err error)

// CacheStats reports Loader cache activity.
type CacheStats struct {
	Hits uint64 `json:"hits"`
	// Misses counts calls that waited on an extraction, shared or not.
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	tables  *models.Tables
}

// Loader caches extraction results per file. An entry is reused until the file's
// modification time or size changes, after which the next Load re-extracts it.
type Loader struct {
	opts     Options
	observer LoadObserver

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithObserver registers fn to be called after each extraction.
func WithObserver(fn LoadObserver) LoaderOption {
	return func(l *Loader) {
		l.observer = fn
	}
}

// NewLoader creates a Loader that extracts with opts.
func NewLoader(opts Options, options ...LoaderOption) *Loader {
	l := &Loader{
		opts:    opts,
		entries: make(map[string]cacheEntry),
	}
	for _, o := range options {
		o(l)
	}
	return l
}

// Load returns the tables for path, extracting them only on a cache miss.
// Concurrent misses for the same file share one extraction.
func (l *Loader) Load(ctx context.Context, path string) (*models.Tables, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(key)
	if err != nil {
		l.Invalidate(key)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	l.mu.RLock()
	entry, ok := l.entries[key]
	l.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		l.hits.Add(1)
		return entry.tables, nil
	}

	l.misses.Add(1)
	ch := l.group.DoChan(flightKey(key, info), func() (interface{}, error) {
		start := time.Now()
		tables, err := Extract(key, l.opts)
		if l.observer != nil {
			l.observer(key, time.Since(start), err)
		}
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.entries[key] = cacheEntry{modTime: info.ModTime(), size: info.Size(), tables: tables}
		l.mu.Unlock()
		return tables, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.Tables), nil
	}
}

// flightKey identifies one version of the file, so a caller that already sees a
// newer file never joins an extraction of the older one.
func flightKey(path string, info fs.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())
}

// Invalidate drops the cached entry for path.
func (l *Loader) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()
}

// Stats returns a snapshot of cache counters.
func (l *Loader) Stats() CacheStats {
	l.mu.RLock()
	n := len(l.entries)
	l.mu.RUnlock()
	return CacheStats{
		Hits:    l.hits.Load(),
		Misses:  l.misses.Load(),
		Entries: n,
	}
}
