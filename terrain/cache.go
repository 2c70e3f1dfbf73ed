package terrain

import "sync"

// Cache memoizes generated geometry keyed by the exact parameter
// structs. Generation is deterministic, so a hit is indistinguishable
// from regenerating; the cache only saves the work. Entries for a key
// are computed once and never invalidated, changing any parameter
// produces a new key.
type Cache struct {
	mu      sync.Mutex
	cliffs  map[CliffParams]*Geometry
	rocks   map[RockParams]*Geometry
	beaches map[BeachParams]*Geometry
}

// NewCache creates an empty geometry cache.
func NewCache() *Cache {
	return &Cache{
		cliffs:  make(map[CliffParams]*Geometry),
		rocks:   make(map[RockParams]*Geometry),
		beaches: make(map[BeachParams]*Geometry),
	}
}

// Cliff returns the cached cliff for p, generating it on first use.
func (c *Cache) Cliff(p CliffParams) *Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.cliffs[p]; ok {
		return g
	}
	g := GenerateCliff(p)
	c.cliffs[p] = g
	return g
}

// Rock returns the cached rock for p, generating it on first use.
func (c *Cache) Rock(p RockParams) *Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.rocks[p]; ok {
		return g
	}
	g := GenerateRock(p)
	c.rocks[p] = g
	return g
}

// Beach returns the cached beach for p, generating it on first use.
func (c *Cache) Beach(p BeachParams) *Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.beaches[p]; ok {
		return g
	}
	g := GenerateBeach(p)
	c.beaches[p] = g
	return g
}
