package palette

// Cache memoizes Parse results keyed by the raw style string.
// Each renderer owns its own Cache; it is not safe for concurrent use.
type Cache struct {
	entries map[string]Value
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Value)}
}

// Get returns the parsed color for raw. Unrecognised values resolve to the
// default color and are cached as such.
func (c *Cache) Get(raw string) Value {
	if v, ok := c.entries[raw]; ok {
		return v
	}
	v, _ := Parse(raw)
	c.entries[raw] = v
	return v
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Reset drops all cached entries.
func (c *Cache) Reset() {
	clear(c.entries)
}
