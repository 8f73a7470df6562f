package i18n

import (
	"container/list"
	"sync"
)

// DefaultMatchCacheSize is the number of resolved locales a Translator keeps.
const DefaultMatchCacheSize = 64

type matchEntry struct {
	locale string
	lang   string
}

// matchCache remembers locale resolutions, evicting the least recently used
// locale once full. Requested locales often come from request headers, so
// the cache is bounded.
type matchCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func newMatchCache(capacity int) *matchCache {
	if capacity <= 0 {
		return nil
	}
	return &matchCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *matchCache) get(locale string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[locale]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*matchEntry).lang, true
}

func (c *matchCache) put(locale, lang string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[locale]; ok {
		elem.Value.(*matchEntry).lang = lang
		c.order.MoveToFront(elem)
		return
	}

	c.items[locale] = c.order.PushFront(&matchEntry{locale: locale, lang: lang})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*matchEntry).locale)
	}
}

func (c *matchCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
