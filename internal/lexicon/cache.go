package lexicon

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cache memoizes Load results per path, keyed by the file's modification
// time and size, so an edited rule table is picked up on the next request
// without a process restart.
type Cache struct {
	mu      sync.Mutex
	logger  *zap.Logger
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	lex     *Lexicon
}

func NewCache(logger *zap.Logger) *Cache {
	return &Cache{
		logger:  logger,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the lexicon for path, reloading it if the file changed since
// the cached load. A missing file is never cached, so the table recovers as
// soon as the file appears.
func (c *Cache) Get(path string) *Lexicon {
	info, err := os.Stat(path)
	if err != nil {
		c.mu.Lock()
		delete(c.entries, path)
		c.mu.Unlock()
		return Load(path, c.logger)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok && e.modTime.Equal(info.ModTime()) && e.size == info.Size() {
		return e.lex
	}
	lex := Load(path, c.logger)
	c.entries[path] = cacheEntry{modTime: info.ModTime(), size: info.Size(), lex: lex}
	return lex
}

// Invalidate drops the cached entry for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
