package l10n

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// FormatterCache builds and memoizes one Formatter per locale. Concurrent
// first requests for the same locale build it only once.
type FormatterCache struct {
	group      singleflight.Group
	mu         sync.RWMutex
	formatters map[string]*Formatter
}

// NewFormatterCache creates an empty cache.
func NewFormatterCache() *FormatterCache {
	return &FormatterCache{
		formatters: make(map[string]*Formatter),
	}
}

// Get returns the cached Formatter for locale, building it on first use.
func (c *FormatterCache) Get(locale string) (*Formatter, error) {
	c.mu.RLock()
	f, ok := c.formatters[locale]
	c.mu.RUnlock()
	if ok {
		return f, nil
	}

	v, err, _ := c.group.Do(locale, func() (any, error) {
		c.mu.RLock()
		f, ok := c.formatters[locale]
		c.mu.RUnlock()
		if ok {
			return f, nil
		}

		f, err := NewFormatter(locale)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.formatters[locale] = f
		c.mu.Unlock()
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Formatter), nil
}
