package tool

import "sync"

// Catalog is a name-keyed collection of tools with thread-safe operations.
// Callers assemble one at startup, export every member's definition into the
// chat request, and route each inbound tool call to Get(call.Name) before
// dispatching. Names are matched exactly, the way the service echoes them.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tools: make(map[string]*Tool)}
}

// NewCatalogWithTools creates a catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...*Tool) *Catalog {
	c := NewCatalog()
	c.Add(tools...)
	return c
}

// Add registers the given tools under their names. A tool with the same
// name replaces the existing entry.
func (c *Catalog) Add(tools ...*Tool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[t.Name()] = t
	}
}

// Get retrieves a tool by its exact name.
func (c *Catalog) Get(name string) (*Tool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, exists := c.tools[name]
	return t, exists
}

// Has reports whether a tool with the given name is registered.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.tools[name]
	return exists
}

// Names returns the registered tool names. Order is not specified.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	return names
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}
